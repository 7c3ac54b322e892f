package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func downloadCmd() *cobra.Command {
	downloadRoot := &cobra.Command{
		Use:   "download",
		Short: "Binary download helpers",
	}

	downloadRoot.AddCommand(downloadAuthorizeURLCmd())

	return downloadRoot
}

func downloadAuthorizeURLCmd() *cobra.Command {
	var showFragments bool

	cmd := &cobra.Command{
		Use:   "authorize-url <product-id> <file-id>",
		Short: "Print the URL a user opens to authorize a file download",
		Long: "Print the authorization URL for downloading a product file. After the\n" +
			"user signs in, the authorization server redirects to the gateway's\n" +
			"callback, which streams the file.",
		Example: `  catalogctl download authorize-url P123 F456

  # Show the individual redirect fragments too
  catalogctl download authorize-url P123 F456 --fragments`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().AuthorizeDownload(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if showFragments {
				for i, f := range resp.Fragments {
					fmt.Fprintf(out, "%d\t%s\n", i, f)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, resp.URL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showFragments, "fragments", false, "also print the unencoded fragments")

	return cmd
}
