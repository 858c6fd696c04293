package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/ai-accounts-manager/internal/application"
	"github.com/bnema/ai-accounts-manager/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage email accounts and product links",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountLinkCmd(app),
		newAccountUnlinkCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	var productID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts with their cooldown state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot := app.service.Snapshot()
			now := app.clock.Now()

			if productID != "" {
				for _, row := range snapshot.LinkedAccounts(domain.ProductID(productID)) {
					line := fmt.Sprintf("%s\t%s", accountRow(row.Account, now), row.RelationID)
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
						return err
					}
				}
				return nil
			}

			for _, account := range snapshot.Accounts {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), accountRow(account, now)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&productID, "product", "p", "", "only list accounts linked to this product")

	return cmd
}

func accountRow(account domain.Account, now time.Time) string {
	timer := "ready"
	if account.Status == domain.StatusCooldown {
		timer = domain.ComputeCountdown(account.CountdownEndAt, now).Formatted
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s", account.ID, account.Email, account.Status, timer)
}

func newAccountLinkCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "link <product-id> <email>",
		Short: "Link an email account to a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.ValidateEmail(args[1]); err != nil {
				return err
			}

			return app.service.LinkAccountToProduct(cmd.Context(), domain.ProductID(args[0]), strings.TrimSpace(args[1]))
		},
	}
}

func newAccountUnlinkCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "unlink <link-id>",
		Short: "Remove a product/account link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Unlink %s from its product?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			return app.service.UnlinkAccount(cmd.Context(), domain.LinkID(args[0]))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
