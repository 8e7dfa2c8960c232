package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/planfab/interio/pkg/layout"
	"github.com/planfab/interio/pkg/pipeline"
	"github.com/planfab/interio/pkg/zone"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for interactive tree browsing.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "inspect [cabinet.json]",
		Short: "Browse a solved cabinet interactively",
		Long: `Browse a solved cabinet interactively.

The inspect command opens a terminal UI listing every zone in the tree.
Selecting a zone shows its solved rectangle, content configuration, and any
validation issues. Navigation follows list conventions: arrow keys or j/k to
move, q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0], opts)
		},
	}

	cabinetFlags(cmd, &opts)
	return cmd
}

// runInspect solves the tree and starts the TUI.
func (c *CLI) runInspect(input string, opts pipeline.Options) error {
	root, err := loadTree(input)
	if err != nil {
		return err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	sol, err := pipeline.Solve(root, opts)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	issues := zone.Validate(root, *opts.Limits)

	model := newZoneListModel(root, sol, issues)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	return nil
}

// =============================================================================
// ZoneListModel - Interactive zone browsing
// =============================================================================

// zoneEntry is one row of the zone list: a zone plus its indent level.
type zoneEntry struct {
	zone  *zone.Zone
	depth int
}

// ZoneListModel is the bubbletea model for zone browsing.
type ZoneListModel struct {
	Entries  []zoneEntry
	Solution *pipeline.Solution
	Issues   zone.Result
	Cursor   int
	Height   int
	Offset   int
}

// newZoneListModel flattens the tree pre-order into list entries.
func newZoneListModel(root *zone.Zone, sol *pipeline.Solution, issues zone.Result) ZoneListModel {
	var entries []zoneEntry
	zone.Walk(root, func(z *zone.Zone, path []string) bool {
		entries = append(entries, zoneEntry{zone: z, depth: len(path)})
		return true
	})
	return ZoneListModel{
		Entries:  entries,
		Solution: sol,
		Issues:   issues,
		Height:   15,
	}
}

func (m ZoneListModel) Init() tea.Cmd {
	return nil
}

func (m ZoneListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 10
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ZoneListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Cabinet Zones"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%s%s%s %s", cursor, strings.Repeat("  ", e.depth), e.zone.ID,
			listDimStyle.Render(string(e.zone.ContentType)))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailView())
	return b.String()
}

// detailView renders the solved geometry of the selected zone.
func (m ZoneListModel) detailView() string {
	if len(m.Entries) == 0 {
		return ""
	}
	z := m.Entries[m.Cursor].zone

	var b strings.Builder
	b.WriteString(StyleHighlight.Render(z.ID))
	b.WriteString("\n")

	if rect, ok := m.solvedRect(z.ID); ok {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  rect: %.0f×%.0fmm at (%.0f, %.0f)",
			rect.Width, rect.Height, rect.X, rect.Y)))
		b.WriteString("\n")
	}
	switch z.ContentType {
	case zone.ContentNested:
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s split, %d children", z.Division, len(z.Children))))
		b.WriteString("\n")
	case zone.ContentShelves:
		if sp, ok := m.shelfPlacement(z.ID); ok {
			b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d shelves at %s", len(sp.PositionsY), fmtPositions(sp.PositionsY))))
			b.WriteString("\n")
		}
	case zone.ContentDrawers:
		if dp, ok := m.drawerPlacement(z.ID); ok {
			b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d drawers, boxes %.0f×%.0fmm",
				len(dp.Spans), dp.BoxDims.WidthMM, dp.BoxDims.DepthMM)))
			b.WriteString("\n")
		}
	}

	for _, issue := range m.Issues.Issues {
		if issue.ZoneID == z.ID {
			b.WriteString(StyleWarning.Render("  ! " + issue.Message))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m ZoneListModel) solvedRect(zoneID string) (layout.Rect, bool) {
	for _, zb := range m.Solution.Zones {
		if zb.ZoneID == zoneID {
			return zb.Rect, true
		}
	}
	return layout.Rect{}, false
}

func (m ZoneListModel) shelfPlacement(zoneID string) (pipeline.ShelfPlacement, bool) {
	for _, sp := range m.Solution.Shelves {
		if sp.ZoneID == zoneID {
			return sp, true
		}
	}
	return pipeline.ShelfPlacement{}, false
}

func (m ZoneListModel) drawerPlacement(zoneID string) (pipeline.DrawerPlacement, bool) {
	for _, dp := range m.Solution.Drawers {
		if dp.ZoneID == zoneID {
			return dp, true
		}
	}
	return pipeline.DrawerPlacement{}, false
}

func fmtPositions(positions []float64) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = fmt.Sprintf("%.0f", p)
	}
	return strings.Join(parts, ", ") + "mm"
}
