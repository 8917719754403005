package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// partsCommand creates the parts command for listing part definitions.
func (c *CLI) partsCommand() *cobra.Command {
	var (
		catalogPath string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "parts",
		Short: "List the available part definitions",
		Long: `List the available part definitions.

Shows the builtin catalog: support beams, connectors, and the standard lock
pin. With --catalog, parts from a TOML file are merged over the builtins and
listed alongside them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParts(catalogPath, asJSON)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "TOML part file merged over the builtin catalog")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the catalog as JSON")

	return cmd
}

func (c *CLI) runParts(catalogPath string, asJSON bool) error {
	set, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(set.All())
	}

	rows := make([][]string, 0, set.Len())
	for _, def := range set.All() {
		sockets := len(def.FemalePoints())
		pins := len(def.Points) - sockets
		pull := "—"
		if def.PullThrough != nil {
			pull = def.PullThrough.String()
		}
		rows = append(rows, []string{
			def.ID,
			def.Name,
			def.Category.String(),
			fmt.Sprintf("%d", len(def.Cells)),
			fmt.Sprintf("%d", sockets),
			fmt.Sprintf("%d", pins),
			pull,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Category", "Cells", "Sockets", "Pins", "Pull").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			return styleTableCell
		})

	fmt.Println(t)
	printDetail("%d part definitions", set.Len())
	return nil
}
