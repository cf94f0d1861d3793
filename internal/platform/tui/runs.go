package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/frogger-arcade/internal/assets"
	"github.com/vovakirdan/frogger-arcade/internal/storage"
)

const maxRuns = 20

// RunSource supplies the finished runs listed by the runs overlay.
type RunSource interface {
	TopRuns(limit int) ([]storage.Run, error)
	Stats() (*storage.Stats, error)
}

// runsView is the session scoreboard shown over the game.
type runsView struct {
	source RunSource
	table  table.Model
	runs   []storage.Run
	stats  *storage.Stats
	err    error
	width  int
	height int
}

func newRunsView(source RunSource, width, height int) *runsView {
	v := &runsView{source: source, width: width, height: height}
	v.table = v.createTable()
	return v
}

// createTable creates a table sized to the current window.
func (v *runsView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 7},
		{Title: "Character", Width: 16},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(v.height-10, 3)), // Title, stats, borders and footer
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads runs from the source.
func (v *runsView) Refresh() {
	v.runs, v.err = v.source.TopRuns(maxRuns)
	if v.err == nil {
		v.stats, v.err = v.source.Stats()
	}

	rows := make([]table.Row, len(v.runs))
	for i, r := range v.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			assets.CharacterName(r.Character),
			r.EndedAt.Local().Format("15:04:05"),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// Resize rebuilds the table for a new window size.
func (v *runsView) Resize(width, height int) {
	v.width = width
	v.height = height
	rows := v.table.Rows()
	v.table = v.createTable()
	v.table.SetRows(rows)
}

// Update scrolls the table.
func (v *runsView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

// View renders the overlay.
func (v *runsView) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var body string
	switch {
	case v.err != nil:
		body = mutedStyle.Render("Runs unavailable: " + v.err.Error())
	case len(v.runs) == 0:
		body = mutedStyle.Italic(true).Padding(1, 4).Render("No runs finished yet.\nLose all your lives to set a score!")
	default:
		body = v.table.View()
	}

	parts := []string{titleStyle.Render("SESSION RUNS"), ""}
	if v.stats != nil && v.stats.Runs > 0 {
		parts = append(parts, mutedStyle.Render(fmt.Sprintf(
			"%d runs   best %d   average %.1f   furthest level %d",
			v.stats.Runs, v.stats.BestScore, v.stats.AvgScore, v.stats.MaxLevel)), "")
	}
	parts = append(parts, boxStyle.Render(body))

	return lipgloss.Place(v.width, max(v.height-1, 1), lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

