package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var emptyTableStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Italic(true)

// ReplayTable renders saved replays as a static table, newest first.
func ReplayTable(replays []storage.ReplaySummary) string {
	if len(replays) == 0 {
		return emptyTableStyle.Render("No replays recorded yet. Play with --record to save one.")
	}

	columns := []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Game", Width: 8},
		{Title: "Ticks", Width: 7},
		{Title: "Inputs", Width: 7},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 14},
	}

	rows := make([]table.Row, len(replays))
	for i, r := range replays {
		rows[i] = table.Row{
			shortID(r.ID),
			r.GameID,
			strconv.FormatUint(r.Ticks, 10),
			strconv.Itoa(r.Inputs),
			strconv.FormatInt(r.Seed, 10),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(t.View())
}
