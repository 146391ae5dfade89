package cmd

import (
	"fmt"

	"github.com/gh1224/kanaflash/internal/kana"
	"github.com/gh1224/kanaflash/internal/store"
	"github.com/spf13/cobra"
)

var mistakesCmd = &cobra.Command{
	Use:   "mistakes",
	Short: "Inspect the tricky-character list",
}

var mistakesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List characters marked as tricky",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ids := s.Mistakes().All()
		if len(ids) == 0 {
			fmt.Println("No tricky characters recorded.")
			return nil
		}

		fmt.Printf("%-4s  %-6s  %-10s  %s\n", "Kana", "Romaji", "Script", "Category")
		for _, e := range kana.ByID(kana.Catalog, ids) {
			fmt.Printf("%-4s  %-6s  %-10s  %s\n", e.Char, e.Romaji, e.Script, e.Category)
		}
		fmt.Printf("\n%d characters.\n", len(ids))
		return nil
	},
}

var mistakesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every character from the tricky list",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		n := s.Mistakes().Len()
		if err := s.Mistakes().Clear(); err != nil {
			return fmt.Errorf("clear mistakes: %w", err)
		}
		fmt.Printf("Cleared %d characters.\n", n)
		return nil
	},
}

func init() {
	mistakesCmd.AddCommand(mistakesListCmd)
	mistakesCmd.AddCommand(mistakesClearCmd)
}
