package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/pkg/bom"
)

// bomCommand creates the bom command for deriving bills of materials.
func (c *CLI) bomCommand() *cobra.Command {
	var (
		catalogPath string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "bom <assembly.json|assembly.fgb>",
		Short: "Derive the bill of materials for an assembly",
		Long: `Derive the bill of materials for an assembly.

Tallies every placed part by definition and infers the fasteners the build
needs: one lock pin per connector arm that extends into a beam cell, with a
10% spare margin rounded up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBOM(args[0], catalogPath, asJSON)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "TOML part file merged over the builtin catalog")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the bill of materials as JSON")

	return cmd
}

func (c *CLI) runBOM(path, catalogPath string, asJSON bool) error {
	a, err := openAssembly(path, catalogPath)
	if err != nil {
		return err
	}

	entries := bom.Materials(a)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	rows := make([][]string, 0, len(entries))
	total := 0
	for _, e := range entries {
		rows = append(rows, []string{e.Name, e.Category, fmt.Sprintf("%d", e.Quantity)})
		total += e.Quantity
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Part", "Category", "Qty").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			return styleTableCell
		})

	fmt.Println(t)
	printDetail("%d line items, %d pieces", len(entries), total)
	return nil
}
