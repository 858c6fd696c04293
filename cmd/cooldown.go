package cmd

import (
	"fmt"
	"time"

	"github.com/bnema/ai-accounts-manager/internal/application"
	"github.com/bnema/ai-accounts-manager/internal/domain"
	"github.com/spf13/cobra"
)

func newCooldownCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cooldown",
		Short: "Manage account cooldown timers",
	}

	cmd.AddCommand(
		newCooldownStartCmd(app),
		newCooldownResetCmd(app),
		newCooldownWatchCmd(app),
	)

	return cmd
}

func newCooldownStartCmd(app *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "start <account-id>",
		Short: "Put an account into cooldown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.ValidateCooldownDays(days); err != nil {
				return err
			}

			accountID := domain.AccountID(args[0])
			if err := app.service.StartCooldown(cmd.Context(), accountID, days); err != nil {
				return err
			}

			account, ok := app.service.Snapshot().Account(accountID)
			if !ok || account.CountdownEndAt == nil {
				return nil
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "cooldown until %s\n", account.CountdownEndAt.Format(time.RFC3339))
			return err
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 7, "cooldown length in days (1-365)")

	return cmd
}

func newCooldownResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <account-id>",
		Short: "Clear an account cooldown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.service.ResetCooldown(cmd.Context(), domain.AccountID(args[0]))
		},
	}
}

func newCooldownWatchCmd(app *app) *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow an account countdown until it runs out",
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, ok := app.service.Snapshot().Account(domain.AccountID(accountID))
			if !ok {
				return fmt.Errorf("watch account %s: %w", accountID, domain.ErrAccountNotFound)
			}
			if account.Status != domain.StatusCooldown {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "ready to start")
				return err
			}

			updates := make(chan domain.Countdown, 1)
			projector := application.NewProjector(app.clock, time.Second, keepLatest(updates))
			defer projector.Stop()
			projector.SetTarget(account.CountdownEndAt)

			for {
				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				case countdown := <-updates:
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), countdown.Formatted); err != nil {
						return err
					}
					if countdown.IsExpired {
						return app.service.ResetCooldown(cmd.Context(), account.ID)
					}
				}
			}
		},
	}

	cmd.Flags().StringVarP(&accountID, "account", "a", "", "account id to watch")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

// keepLatest adapts the projector callback to a 1-slot channel. When the
// consumer lags, the pending value is replaced rather than the new one
// dropped, so the final expiry event always reaches a stalled consumer.
func keepLatest(updates chan domain.Countdown) func(domain.Countdown) {
	return func(countdown domain.Countdown) {
		select {
		case <-updates:
		default:
		}
		updates <- countdown
	}
}
