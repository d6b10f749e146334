package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/finzaapp/finza/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect finza configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config and data file locations",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, _ := config.Load()
		fmt.Println(config.ConfigPath())
		fmt.Println(config.DataPath(cfg))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		// Never echo the API key.
		cfg.Advisor.APIKey = mask(cfg.Advisor.APIKey)
		enc := toml.NewEncoder(os.Stdout)
		return enc.Encode(cfg)
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func mask(key string) string {
	if len(key) > 8 {
		return key[:4] + "..." + key[len(key)-2:]
	}
	if key != "" {
		return "****"
	}
	return ""
}
