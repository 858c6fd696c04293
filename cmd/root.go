package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aim",
		Short:         "AI Accounts Manager (aim): track subscriptions and usage cooldowns",
		Long:          "aim (AI Accounts Manager) keeps an inventory of your AI service subscriptions, the email accounts linked to each one, and per-account cooldown timers so you know when an account is ready to use again.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newProductCmd(app),
		newAccountCmd(app),
		newCooldownCmd(app),
		newBoardCmd(app),
	)

	return rootCmd
}
