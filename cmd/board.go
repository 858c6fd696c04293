package cmd

import (
	"github.com/bnema/ai-accounts-manager/internal/adapters/render/board"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive product board",
		RunE: func(_ *cobra.Command, _ []string) error {
			return board.Run(app.service, app.clock)
		},
	}
}
