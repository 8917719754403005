package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	fgio "github.com/framegrid/framegrid/pkg/io"
)

// convertCommand creates the convert command for translating assembly formats.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		fromStr string
		toStr   string
	)

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Translate between JSON and binary assembly formats",
		Long: `Translate between JSON and binary assembly formats.

Formats are detected from the file extensions (.json, .fgb) and can be
overridden with --from and --to. The conversion is lossless in both
directions; legacy single-number rotations in JSON input are normalized to
the triple form on the way through.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(args[0], args[1], fromStr, toStr)
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "input format: json or binary (default: by extension)")
	cmd.Flags().StringVar(&toStr, "to", "", "output format: json or binary (default: by extension)")

	return cmd
}

func (c *CLI) runConvert(input, output, fromStr, toStr string) error {
	from, err := resolveFormat(input, fromStr)
	if err != nil {
		return err
	}
	to, err := resolveFormat(output, toStr)
	if err != nil {
		return err
	}

	f, err := fgio.Import(input, from)
	if err != nil {
		return fmt.Errorf("load assembly %s: %w", input, err)
	}
	if err := fgio.Export(f, output, to); err != nil {
		return fmt.Errorf("write assembly %s: %w", output, err)
	}

	printSuccess("Converted %s (%s) to %s", input, from, to)
	printFile(output)
	printDetail("%d parts", len(f.Parts))
	return nil
}

// resolveFormat picks the explicit format when given, falling back to
// extension detection.
func resolveFormat(path, explicit string) (fgio.Format, error) {
	if explicit != "" {
		return fgio.ParseFormat(explicit)
	}
	return fgio.DetectFormat(path)
}
