package cli

import (
	"github.com/spf13/cobra"
)

var (
	// List command flags
	listPage  uint16
	listLimit uint8
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [flags]",
		Short: "List one page of image metadata",
		Long: `List one page of image metadata records.

Examples:
  # List the first page, 10 images per page
  picsum list

  # List the third page, 25 images per page
  picsum list --page 3 --limit 25

  # List as JSON
  picsum list -j`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newPicsumClient()

			list, err := client.GetImages(cmd.Context(), listPage, listLimit)
			if err != nil {
				return err
			}
			return printResult(list)
		},
	}

	cmd.Flags().Uint16Var(&listPage, "page", 1, "Page to fetch")
	cmd.Flags().Uint8Var(&listLimit, "limit", 10, "Images per page")
	return cmd
}
