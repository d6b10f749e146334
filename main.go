package main

import (
	"github.com/joho/godotenv"

	"github.com/finzaapp/finza/cmd"
)

func main() {
	// Optional .env for FINZA_API_KEY and friends; absence is fine.
	_ = godotenv.Load()

	cmd.Execute()
}
