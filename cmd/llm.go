package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gh1224/kanaflash/internal/llm"
	"github.com/gh1224/kanaflash/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests with token counts and cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-26s  %-6s  %-6s  %-7s  %-9s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Cost", "OK")
		fmt.Println(strings.Repeat("─", 104))

		var totalCost float64
		costKnown := true
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 26 {
				model = model[:26]
			}

			costStr := "?"
			if c := llm.LookupCost(e.Model); c != nil {
				cost := c.Cost(e.InputTokens, e.OutputTokens)
				totalCost += cost
				costStr = formatCost(cost)
			} else {
				costKnown = false
			}

			fmt.Printf("%-5d  %-19s  %-10s  %-26s  %-6d  %-6d  %-7d  %-9s  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				costStr,
				ok,
			)
		}

		fmt.Println(strings.Repeat("─", 104))
		label := "Total cost"
		if !costKnown {
			label = "Total cost (partial)"
		}
		fmt.Printf("%s: %s\n", label, formatCost(totalCost))
		return nil
	},
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	llmCmd.AddCommand(llmListCmd)
}
