// Package assistant implements SPEC_FULL.md §9.6's advisory diagnostic
// explainer, grounded on the teacher's chat.go (same go-openai client
// construction and ChatCompletion call), repointed from free-form
// vacation chat to explaining a single InfeasibleModel diagnostic.
package assistant

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ricferreira/roster-optimizer/internal/models"
	"github.com/ricferreira/roster-optimizer/internal/roster"
)

// Explainer turns an InfeasibleModel diagnostic into a short natural-
// language explanation. It is advisory only: never part of §6's
// pass/fail contract, and silently disabled when no API key is configured.
type Explainer struct {
	client *openai.Client
	model  string
}

// New returns nil when apiKey is empty — a nil *Explainer is safe to
// call Explain on (it just returns ""), matching the teacher's own
// settings-gated smartOptimize behavior.
func New(apiKey, model string) *Explainer {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Explainer{client: openai.NewClient(apiKey), model: model}
}

// Explain describes why in failed to produce a feasible roster, given
// the InfeasibleModel diagnostic the Orchestrator returned. Returns ""
// (never an error the caller must act on) when the explainer is
// disabled or the API call itself fails — an unavailable explanation is
// never treated as a reason to fail the run.
func (e *Explainer) Explain(ctx context.Context, diag *roster.InfeasibleModel, in models.Inputs) string {
	if e == nil {
		return ""
	}

	prompt := buildPrompt(diag, in)
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You explain why an employee seat-rostering optimization came back infeasible. " +
					"Be concise: 2-3 sentences, plain language, no JSON, no markdown.",
			},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func buildPrompt(diag *roster.InfeasibleModel, in models.Inputs) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Month: %s. Office attendance target: %.0f%%.\n", in.TargetMonthYear, in.OfficePercentage*100)
	fmt.Fprintf(&sb, "%d employees, %d seats.\n", len(in.Employees), len(in.Seats))
	if len(diag.Culprits) > 0 {
		fmt.Fprintf(&sb, "These employees cannot reach their monthly quota from available seat-days alone: %s.\n",
			strings.Join(diag.Culprits, ", "))
	} else {
		sb.WriteString("No single employee's available seat-days are obviously short; the conflict likely spans several hard constraints together.\n")
	}
	sb.WriteString("Explain the likely cause and suggest one concrete change to make it feasible.")
	return sb.String()
}
