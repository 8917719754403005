package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/render"
)

// graphCommand creates the graph command for rendering attachment graphs.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		catalogPath string
		output      string
		format      string
		detailed    bool
	)

	cmd := &cobra.Command{
		Use:   "graph <assembly.json|assembly.fgb>",
		Short: "Render the attachment graph as DOT or SVG",
		Long: `Render the attachment graph as DOT or SVG.

Every placed part becomes a node; every connector arm reaching into another
part's cell, and every pull-through clamp sharing a beam's cell, becomes an
edge. Disconnected components in the output are groups of parts not fastened
to the rest of the build.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(args[0], catalogPath, output, format, detailed)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "TOML part file merged over the builtin catalog")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg, or stdout for dot)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include instance IDs and edge directions")

	return cmd
}

func (c *CLI) runGraph(path, catalogPath, output, format string, detailed bool) error {
	a, err := openAssembly(path, catalogPath)
	if err != nil {
		return err
	}

	g := render.Build(a)
	dot := render.ToDOT(g, render.Options{Detailed: detailed})

	switch format {
	case "dot":
		if output == "" {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}

	case "svg":
		p := newProgress(c.Logger)
		svg, err := render.RenderSVG(dot)
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
		p.done("Rendered attachment graph")

		if output == "" {
			base := strings.TrimSuffix(path, filepath.Ext(path))
			output = base + ".svg"
		}
		if err := os.WriteFile(output, svg, 0644); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}

	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown graph format: %s (want svg or dot)", format)
	}

	printSuccess("Attachment graph written")
	printFile(output)
	printDetail("%d parts, %d attachments", len(g.Nodes), len(g.Edges))
	return nil
}
