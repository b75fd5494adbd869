package export

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	accentColor = lipgloss.Color("#32cd32")
	mutedColor  = lipgloss.Color("#94a3b8")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	okStyle    = lipgloss.NewStyle().Foreground(accentColor)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

// Report formats an export result for the terminal.
func Report(res *Result) string {
	var total int64
	lines := make([]string, 0, len(res.Pages))
	for _, p := range res.Pages {
		total += p.Bytes
		mark := okStyle.Render("✓")
		if p.Status != http.StatusOK {
			mark = warnStyle.Render(fmt.Sprintf("%d", p.Status))
		}
		lines = append(lines, fmt.Sprintf("%s %-28s %s %s",
			mark, p.Path, mutedStyle.Render("→ "+p.File), mutedStyle.Render("("+humanize.Bytes(uint64(p.Bytes))+")")))
	}

	summary := fmt.Sprintf("%d pages, %d assets, %s in %s",
		len(res.Pages), len(res.Assets), humanize.Bytes(uint64(total)), res.Elapsed.Round(time.Millisecond))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Exported to "+res.OutDir),
		boxStyle.Render(strings.Join(lines, "\n")),
		mutedStyle.Render(summary),
	)
}
