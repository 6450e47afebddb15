package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// newDetailsCmd creates the details command
func newDetailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details ID [flags]",
		Short: "Print the metadata of a specific image",
		Long: `Print the metadata record of a specific image by its id.

Examples:
  # Print the metadata of image 1 as YAML
  picsum details 1

  # Print the metadata of image 1 as JSON
  picsum details 1 -j`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newPicsumClient()

			details, err := client.GetImageDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(details)
		},
	}
}

// printResult renders a result value as indented JSON with -j, or YAML
// otherwise.
func printResult(v any) error {
	if jsonOutput {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
