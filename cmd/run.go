package cmd

import (
	"fmt"
	"os"

	"github.com/gh1224/kanaflash/internal/app"
	"github.com/gh1224/kanaflash/internal/llm"
	"github.com/gh1224/kanaflash/internal/mnemonic"
	"github.com/gh1224/kanaflash/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var svc *mnemonic.Service
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Mnemonics will fall back to a stock phrase.")
		svc = mnemonic.NewService(nil)
	} else {
		svc = mnemonic.NewService(provider)
	}

	return app.Run(app.Options{
		Mistakes:  st.Mistakes(),
		Mnemonics: svc,
	})
}
