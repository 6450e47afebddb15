// Package cli implements the picsum command line interface. The CLI is a
// thin embedding application around pkg/picsum: it wires configuration,
// output formatting, and transport logging, while all service semantics
// live in the library.
package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dleutenegger/picsum-go/pkg/picsum"
)

var (
	// Global flags
	jsonOutput bool
	verbose    bool
	configFile string
)

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "picsum [command] [flags]",
	Short: "picsum CLI - fetch placeholder images and metadata from picsum.photos",
	Long: `picsum CLI fetches placeholder images and image metadata from the
picsum.photos service.

Examples:
  # Fetch the metadata of image 1
  picsum details 1

  # List the first page of images, 10 per page
  picsum list --page 1 --limit 10

  # Download image 1 as a 640x480 grayscale jpeg
  picsum image 1 --width 640 --height 480 --grayscale -o image.jpg

  # Download a random blurred webp image
  picsum random --blur 5 --format webp`,
	PersistentPreRun: preRunHandlePersistents,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	// Set up persistent flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "", "", "Path to configuration file to override default")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")

	// Add commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDetailsCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newImageCmd())
	rootCmd.AddCommand(newRandomCmd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true // Prevent Cobra from printing the error
	rootCmd.SilenceUsage = true  // Prevent Cobra from printing usage on error

	err := rootCmd.Execute()
	if err != nil {
		if jsonOutput {
			kv := map[string]string{
				"error": err.Error(),
			}
			printJSON(kv)
		} else {
			errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// preRunHandlePersistents loads the configuration before command execution.
// A missing default config file is fine; an explicitly provided one must exist.
func preRunHandlePersistents(cmd *cobra.Command, args []string) {
	if cmd.Name() == "version" {
		return
	}

	required := configFile != ""
	if err := LoadConfig(configFile); err != nil {
		if os.IsNotExist(err) && !required {
			return
		}
		errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newPicsumClient builds the library client from the resolved base URL.
// With --verbose the transport is wrapped in a logging round tripper.
func newPicsumClient() *picsum.Client {
	opts := []picsum.ClientOption{
		picsum.WithBaseURL(BaseURL()),
	}
	if verbose {
		opts = append(opts, picsum.WithHTTPClient(&http.Client{
			Transport: newLoggingTransport(http.DefaultTransport),
		}))
	}
	return picsum.NewClient(opts...)
}

// newVersionCmd creates and returns a new version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of picsum-cli",
		Run: func(cmd *cobra.Command, args []string) {
			configPath, err := GetDefaultConfigPath()
			if err != nil {
				configPath = "unknown"
			}

			if jsonOutput {
				kv := map[string]string{
					"version":     getCLIVersion(),
					"config_file": configPath,
				}
				printJSON(kv)
			} else {
				cmd.Printf("picsum CLI %s\n", getCLIVersion())
				cmd.Printf("Config file: %s\n", configPath)
			}
		},
	}
}

// printJSON prints the given map as JSON to stdout
func printJSON(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}

// getCLIVersion returns the current CLI version
func getCLIVersion() string {
	return "v0.1.0"
}
