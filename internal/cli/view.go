package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/framegrid/framegrid/pkg/assembly"
	"github.com/framegrid/framegrid/pkg/catalog"
)

// viewCommand creates the view command for browsing assemblies in the terminal.
func (c *CLI) viewCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "view <assembly.json|assembly.fgb>",
		Short: "Browse an assembly layer by layer in the terminal",
		Long: `Browse an assembly layer by layer in the terminal.

Shows one horizontal grid layer (a fixed Y level) at a time, looking down the
vertical axis. Beams render as filled cells, connectors as diamonds, and
cells shared by a pull-through clamp and its beam as double markers. Use the
arrow keys to move between layers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openAssembly(args[0], catalogPath)
			if err != nil {
				return err
			}
			m := newViewModel(a)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "TOML part file merged over the builtin catalog")

	return cmd
}

// Cell markers by content.
const (
	markBeam      = "██"
	markConnector = "◆ "
	markShared    = "▓▓"
	markEmpty     = "· "
)

var (
	viewBeamStyle      = lipgloss.NewStyle().Foreground(colorCyan)
	viewConnectorStyle = lipgloss.NewStyle().Foreground(colorYellow)
	viewSharedStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	viewEmptyStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// layerCell is what occupies one grid cell on one layer.
type layerCell struct {
	connector bool
	shared    bool
}

// viewModel is the bubbletea model for the layer viewer.
type viewModel struct {
	name   string
	parts  int
	layers map[int]map[[2]int]layerCell

	minX, maxX int
	minY, maxY int
	minZ, maxZ int

	layer int
}

// newViewModel snapshots an assembly into renderable layers.
func newViewModel(a *assembly.Assembly) viewModel {
	m := viewModel{
		name:   a.Name(),
		parts:  a.Len(),
		layers: make(map[int]map[[2]int]layerCell),
	}

	first := true
	for _, p := range a.Parts() {
		def, ok := a.Catalog().Definition(p.DefinitionID)
		if !ok {
			continue
		}
		for _, cell := range def.WorldCells(p.Position, p.Rotation, p.Orientation) {
			if first {
				m.minX, m.maxX = cell.X, cell.X
				m.minY, m.maxY = cell.Y, cell.Y
				m.minZ, m.maxZ = cell.Z, cell.Z
				first = false
			}
			m.minX, m.maxX = min(m.minX, cell.X), max(m.maxX, cell.X)
			m.minY, m.maxY = min(m.minY, cell.Y), max(m.maxY, cell.Y)
			m.minZ, m.maxZ = min(m.minZ, cell.Z), max(m.maxZ, cell.Z)

			plane := m.layers[cell.Y]
			if plane == nil {
				plane = make(map[[2]int]layerCell)
				m.layers[cell.Y] = plane
			}
			key := [2]int{cell.X, cell.Z}
			lc, occupied := plane[key]
			if occupied {
				lc.shared = true
			}
			if def.Category == catalog.CategoryConnector {
				lc.connector = true
			}
			plane[key] = lc
		}
	}

	m.layer = m.minY
	return m
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.layer < m.maxY {
				m.layer++
			}
		case "down", "j":
			if m.layer > m.minY {
				m.layer--
			}
		case "g":
			m.layer = m.minY
		case "G":
			m.layer = m.maxY
		}
	}
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	title := m.name
	if title == "" {
		title = "assembly"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d parts", m.parts)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ layer  g/G first/last  q quit"))
	b.WriteString("\n\n")

	b.WriteString(StyleHighlight.Render(fmt.Sprintf("layer y=%d", m.layer)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  (%d..%d)", m.minY, m.maxY)))
	b.WriteString("\n\n")

	plane := m.layers[m.layer]
	for z := m.maxZ; z >= m.minZ; z-- {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%4d ", z)))
		for x := m.minX; x <= m.maxX; x++ {
			lc, ok := plane[[2]int{x, z}]
			switch {
			case !ok:
				b.WriteString(viewEmptyStyle.Render(markEmpty))
			case lc.shared:
				b.WriteString(viewSharedStyle.Render(markShared))
			case lc.connector:
				b.WriteString(viewConnectorStyle.Render(markConnector))
			default:
				b.WriteString(viewBeamStyle.Render(markBeam))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(viewBeamStyle.Render(markBeam) + StyleDim.Render(" beam  "))
	b.WriteString(viewConnectorStyle.Render(markConnector) + StyleDim.Render(" connector  "))
	b.WriteString(viewSharedStyle.Render(markShared) + StyleDim.Render(" pull-through"))
	b.WriteString("\n")

	return b.String()
}
