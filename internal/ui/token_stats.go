package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/thomas-vilte/gemini-review-action/internal/i18n"
	"github.com/thomas-vilte/gemini-review-action/internal/models"
)

// PrintTokenUsage reports the token accounting of a review run.
func PrintTokenUsage(usage *models.TokenUsage, t *i18n.Translations) {
	if usage == nil || usage.Calls == 0 {
		return
	}
	cyan := color.New(color.FgCyan)
	_, _ = cyan.Print("📊 ")
	fmt.Printf("%s: ", t.GetMessage("ui.token_usage", 0, nil))
	fmt.Printf("%s %d | ", t.GetMessage("ui.input", 0, nil), usage.InputTokens)
	fmt.Printf("%s %d | ", t.GetMessage("ui.output", 0, nil), usage.OutputTokens)
	fmt.Printf("%s %d ", t.GetMessage("ui.total", 0, nil), usage.TotalTokens)
	fmt.Printf("(%s)\n", t.GetMessage("ui.model_calls", usage.Calls, map[string]interface{}{
		"Count": usage.Calls,
	}))
}
