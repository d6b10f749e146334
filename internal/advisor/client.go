// Package advisor fetches a short AI-generated advice string for the
// current ledger state from an OpenAI-compatible endpoint.
package advisor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"

	"github.com/finzaapp/finza/internal/metrics"
	"github.com/finzaapp/finza/internal/model"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

const (
	defaultModel   = "gpt-4o-mini"
	requestTimeout = 10 * time.Second
	maxRecentTx    = 5

	// FallbackNoKey is shown when no API key is configured.
	FallbackNoKey = "Set FINZA_API_KEY (or [advisor] api_key) to get AI advice."
	// FallbackError is shown when the advice call fails for any reason.
	FallbackError = "Advice is unavailable right now. Your figures are still up to date."
)

// Snapshot carries the ledger state an advice request is based on.
type Snapshot struct {
	Transactions []model.Transaction
	Goals        []model.SavingsGoal
	Commitments  []model.Commitment
}

// Advisor produces a one-shot advice string for a ledger snapshot.
type Advisor interface {
	Advise(ctx context.Context, snap Snapshot) (string, error)
}

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a client for the given key. Returns nil if the key is
// empty; callers treat a nil client as "not configured".
func NewClient(apiKey, baseURL, modelName string) *Client {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if modelName == "" {
		modelName = defaultModel
	}

	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: modelName,
	}
}

// Advise requests one short piece of advice. The call is bounded by
// requestTimeout regardless of the caller's context.
func (c *Client) Advise(ctx context.Context, snap Snapshot) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a pragmatic personal-finance advisor. Reply with one short, actionable tip of at most three sentences. No greetings, no markdown.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(snap),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("advisor: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("advisor: empty response")
	}

	advice := strings.TrimSpace(resp.Choices[0].Message.Content)
	if advice == "" {
		return "", fmt.Errorf("advisor: empty response")
	}
	return advice, nil
}

// AdviceOrFallback runs the advisor and degrades to a static string on a
// nil client or any failure. It never returns an error to the caller.
func AdviceOrFallback(ctx context.Context, a Advisor, snap Snapshot) string {
	if a == nil {
		return FallbackNoKey
	}
	advice, err := a.Advise(ctx, snap)
	if err != nil {
		logger.Warn().Err(err).Msg("advice request failed")
		return FallbackError
	}
	return advice
}

// buildPrompt summarizes the snapshot the way the advice model sees it:
// balance, a handful of recent transactions, goals, and the monthly
// commitment load.
func buildPrompt(snap Snapshot) string {
	summary := metrics.Summarize(snap.Transactions)

	var b strings.Builder
	fmt.Fprintf(&b, "Current balance: %s (income %s, expenses %s).\n",
		summary.Balance.StringFixed(2), summary.TotalIncome.StringFixed(2), summary.TotalExpenses.StringFixed(2))

	recent := snap.Transactions
	if len(recent) > maxRecentTx {
		recent = recent[:maxRecentTx]
	}
	if len(recent) > 0 {
		b.WriteString("Recent transactions:\n")
		for _, t := range recent {
			fmt.Fprintf(&b, "- %s %s %s (%s)\n", t.Kind, t.Amount.StringFixed(2), t.Description, t.Category)
		}
	}

	if len(snap.Goals) > 0 {
		b.WriteString("Savings goals:\n")
		for _, g := range snap.Goals {
			fmt.Fprintf(&b, "- %s: %s of %s by %s\n",
				g.Name, g.SavedAmount.StringFixed(2), g.TargetAmount.StringFixed(2), g.TargetDate.Format("2006-01-02"))
		}
	}

	monthly := decimalSum(snap.Commitments)
	if len(snap.Commitments) > 0 {
		fmt.Fprintf(&b, "Fixed monthly commitments: %s across %d bills.\n", monthly.StringFixed(2), len(snap.Commitments))
	}

	fmt.Fprintf(&b, "Advise me on covering my fixed costs (%s/month) while still hitting my goals.", monthly.StringFixed(2))
	return b.String()
}

func decimalSum(commitments []model.Commitment) decimal.Decimal {
	total := decimal.Zero
	for _, c := range commitments {
		total = total.Add(c.Amount)
	}
	return total
}
