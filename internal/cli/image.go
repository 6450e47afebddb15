package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dleutenegger/picsum-go/pkg/picsum"
)

// imageFlags holds the shared render settings of the image and random
// commands.
type imageFlags struct {
	width     uint16
	height    uint16
	grayscale bool
	blur      uint8
	format    string
	output    string
}

func (f *imageFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint16Var(&f.width, "width", 400, "Image width in pixels")
	cmd.Flags().Uint16Var(&f.height, "height", 400, "Image height in pixels")
	cmd.Flags().BoolVar(&f.grayscale, "grayscale", false, "Request a grayscale image")
	cmd.Flags().Uint8Var(&f.blur, "blur", 0, "Blur level (1-10)")
	cmd.Flags().StringVar(&f.format, "format", "jpg", "Image format: jpg or webp")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default <picsum-id>.<format>)")
}

func (f *imageFlags) settings() (*picsum.ImageSettings, error) {
	var format picsum.Format
	switch f.format {
	case "jpg", "jpeg":
		format = picsum.FormatJpeg
	case "webp":
		format = picsum.FormatWebp
	default:
		return nil, fmt.Errorf("unsupported format %q, expected jpg or webp", f.format)
	}

	opts := []picsum.ImageOption{picsum.WithFormat(format)}
	if f.grayscale {
		opts = append(opts, picsum.WithGrayscale())
	}
	if f.blur > 0 {
		opts = append(opts, picsum.WithBlur(f.blur))
	}
	return picsum.NewImageSettings(f.width, f.height, opts...), nil
}

// save writes the fetched image to the output file and reports the result.
func (f *imageFlags) save(img *picsum.Image, format picsum.Format) error {
	name := f.output
	if name == "" {
		name = fmt.Sprintf("%s.%s", img.ID, format.Ext())
	}

	if err := os.WriteFile(name, img.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	if jsonOutput {
		printJSON(map[string]string{
			"id":   img.ID,
			"file": name,
			"size": fmt.Sprint(len(img.Data)),
		})
	} else {
		okLabel.Printf("Saved image %s to %s (%d bytes)\n", img.ID, name, len(img.Data))
	}
	return nil
}

func (f *imageFlags) fetch(ctx context.Context, get func(context.Context, *picsum.ImageSettings) (*picsum.Image, error)) error {
	settings, err := f.settings()
	if err != nil {
		return err
	}

	img, err := get(ctx, settings)
	if err != nil {
		return err
	}
	return f.save(img, settings.Format())
}

// newImageCmd creates the image command
func newImageCmd() *cobra.Command {
	flags := &imageFlags{}
	cmd := &cobra.Command{
		Use:   "image ID [flags]",
		Short: "Download a specific image",
		Long: `Download a specific image by its id.

Examples:
  # Download image 1 at the default 400x400
  picsum image 1

  # Download image 1 as a 640x480 grayscale webp
  picsum image 1 --width 640 --height 480 --grayscale --format webp -o out.webp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newPicsumClient()
			return flags.fetch(cmd.Context(), func(ctx context.Context, settings *picsum.ImageSettings) (*picsum.Image, error) {
				return client.GetImage(ctx, args[0], settings)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

// newRandomCmd creates the random command
func newRandomCmd() *cobra.Command {
	flags := &imageFlags{}
	cmd := &cobra.Command{
		Use:   "random [flags]",
		Short: "Download a random image",
		Long: `Download a random image. The file name reports the id of the image
the service picked.

Examples:
  # Download a random 400x400 image
  picsum random

  # Download a random blurred image
  picsum random --blur 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newPicsumClient()
			return flags.fetch(cmd.Context(), client.GetRandomImage)
		},
	}
	flags.register(cmd)
	return cmd
}
