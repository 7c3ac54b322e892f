package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Browse catalog products",
	}

	productsRoot.AddCommand(
		productsListCmd(),
		productsGetCmd(),
	)

	return productsRoot
}

func productsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every product in the catalog index",
		Example: `  # List products as a table
  catalogctl products list

  # Against a remote gateway, as JSON
  catalogctl products list --server https://gateway.example.com --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListProducts(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if printDegraded(out, resp.Result) {
				return nil
			}
			if len(resp.Data) == 0 {
				fmt.Fprintln(out, "No products found.")
				return nil
			}
			return printProductsTable(out, resp.Data)
		},
	}
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <product-id>",
		Short: "Show a product with its properties and files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if printDegraded(out, resp.Result) {
				return nil
			}
			return printProductDetail(out, &resp.Data)
		},
	}
}
