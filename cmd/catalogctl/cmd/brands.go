package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func brandsCmd() *cobra.Command {
	brandsRoot := &cobra.Command{
		Use:   "brands",
		Short: "Browse catalog brands",
	}

	brandsRoot.AddCommand(
		brandsListCmd(),
		brandsGetCmd(),
	)

	return brandsRoot
}

func brandsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every brand",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListBrands(cmd.Context())
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
				fmt.Fprintln(out, "No brands found.")
				return nil
			}
			return printBrandsTable(out, resp.Data)
		},
	}
}

func brandsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <brand-id>",
		Short: "List the products of one brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().ListBrandProducts(cmd.Context(), args[0])
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
				fmt.Fprintf(out, "No products found for brand %s.\n", args[0])
				return nil
			}
			return printBrandsTable(out, resp.Data)
		},
	}
}
