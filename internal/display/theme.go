// Package display renders match and game results to the terminal
// using lipgloss styling, the way the teacher's internal/ui/theme
// themes Euchre's UI (BrandonDedolph-euchre), retargeted from
// card-game chrome (menus, selection highlights) to the box-score
// output this module produces: per-trick winners, team eye totals,
// and match outcomes.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/markushart/rustyheads/internal/catalog"
	"github.com/markushart/rustyheads/internal/engine"
)

// Theme holds the styles used across rendering, grouped by concern the
// way the teacher's theme does.
type Theme struct {
	Trump       lipgloss.Style
	PlainCard   lipgloss.Style
	ReTeam      lipgloss.Style
	ContraTeam  lipgloss.Style
	TrickWinner lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	Border lipgloss.Style
}

// Default returns the default theme.
func Default() *Theme {
	return &Theme{
		Trump: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E74C3C")).
			Bold(true),
		PlainCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2C3E50")),
		ReTeam: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3498DB")).
			Bold(true),
		ContraTeam: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E67E22")).
			Bold(true),
		TrickWinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#27AE60")).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3498DB")).
			Bold(true).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7F8C8D")).
			Italic(true),
		Body: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2C3E50")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95A5A6")),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#27AE60")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F39C12")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E74C3C")),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3498DB")).
			Padding(1, 2),
	}
}

// Current holds the active theme.
var Current = Default()

// Card renders one card, marking trumps. A card has no team of its
// own, so team coloring is left to the caller.
func (t *Theme) Card(c engine.Card) string {
	label := fmt.Sprintf("%s of %s", c.Face, c.Suit)
	if c.Trump {
		return t.Trump.Render(label + " [T]")
	}
	return t.PlainCard.Render(label)
}

// Team renders a team name in its team color.
func (t *Theme) Team(team engine.Team) string {
	if team == engine.Re {
		return t.ReTeam.Render("Re")
	}
	return t.ContraTeam.Render("Contra")
}

// Trick renders one completed trick, highlighting the winning seat's
// card.
func (t *Theme) Trick(trick engine.Trick, winner int) string {
	var parts []string
	for i, c := range trick.Played {
		seat := (trick.StartingPlayer + i) % len(trick.Played)
		rendered := t.Card(c)
		if seat == winner {
			rendered = t.TrickWinner.Render(rendered + " <-")
		}
		parts = append(parts, rendered)
	}
	return strings.Join(parts, "  ")
}

// MatchSummary renders one match's outcome: the elected match type,
// eye totals for both teams, and the winning team highlighted.
func (t *Theme) MatchSummary(m *engine.Match) string {
	reEyes, contraEyes := m.EyeTotals()
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", t.Title.Render(fmt.Sprintf("Match (%s)", matchTypeName(m.MatchType))))
	fmt.Fprintf(&b, "  %s: %d eyes\n", t.Team(engine.Re), reEyes)
	fmt.Fprintf(&b, "  %s: %d eyes\n", t.Team(engine.Contra), contraEyes)
	fmt.Fprintf(&b, "  winner: %s\n", t.winnerStyle(m.Winner).Render(m.Winner.String()))
	return b.String()
}

// GameSummary renders every match played so far plus the running tally
// of matches won by each team.
func (t *Theme) GameSummary(g *engine.Game) string {
	reWins, contraWins := 0, 0
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", t.Title.Render(fmt.Sprintf("Game: %d of %d matches", len(g.Matches), g.NMatches)))
	for i, m := range g.Matches {
		fmt.Fprintf(&b, "%s\n", t.Subtitle.Render(fmt.Sprintf("-- match %d --", i+1)))
		b.WriteString(t.MatchSummary(m))
		if m.Winner == engine.Re {
			reWins++
		} else {
			contraWins++
		}
	}
	fmt.Fprintf(&b, "%s\n", t.Title.Render("Overall"))
	fmt.Fprintf(&b, "  %s: %d matches\n", t.Team(engine.Re), reWins)
	fmt.Fprintf(&b, "  %s: %d matches\n", t.Team(engine.Contra), contraWins)
	return b.String()
}

func (t *Theme) winnerStyle(team engine.Team) lipgloss.Style {
	if team == engine.Re {
		return t.ReTeam
	}
	return t.ContraTeam
}

func matchTypeName(mt catalog.MatchType) string {
	if mt == 0 {
		return "unelected"
	}
	return mt.String()
}
