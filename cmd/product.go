package cmd

import (
	"fmt"

	"github.com/bnema/ai-accounts-manager/internal/application"
	"github.com/bnema/ai-accounts-manager/internal/domain"
	"github.com/spf13/cobra"
)

func newProductCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage AI products",
	}

	cmd.AddCommand(
		newProductListCmd(app),
		newProductAddCmd(app),
		newProductUpdateCmd(app),
		newProductDeleteCmd(app),
	)

	return cmd
}

func newProductListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot := app.service.Snapshot()
			for _, product := range snapshot.Products {
				line := fmt.Sprintf("%s\t%s\t(%d accounts)", product.ID, product.Name, snapshot.LinkCount(product.ID))
				if product.Description != "" {
					line += "\t" + product.Description
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newProductAddCmd(app *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a product to track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.ValidateProductName(args[0]); err != nil {
				return err
			}

			product, err := app.service.AddProduct(cmd.Context(), args[0], description)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %s\t%s\n", product.ID, product.Name)
			return err
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "short description of the product")

	return cmd
}

func newProductUpdateCmd(app *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Rename a product or change its description",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.ValidateProductName(args[1]); err != nil {
				return err
			}

			id := domain.ProductID(args[0])
			if !cmd.Flags().Changed("description") {
				if current, ok := app.service.Snapshot().Product(id); ok {
					description = current.Description
				}
			}

			return app.service.UpdateProduct(cmd.Context(), id, args[1], description)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "short description of the product")

	return cmd
}

func newProductDeleteCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product and unlink its accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ProductID(args[0])
			product, ok := app.service.Snapshot().Product(id)
			if !ok {
				return nil
			}

			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete %s? This unlinks all its accounts.", product.Name))
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			return app.service.DeleteProduct(cmd.Context(), id)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
