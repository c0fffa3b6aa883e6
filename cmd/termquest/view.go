package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/milk9111/portraitquest/common"
	"github.com/milk9111/portraitquest/engine"
	"github.com/milk9111/portraitquest/levels"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const streetCols = 64

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	streetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	playerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	doorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2).
			Width(68)

	noticeStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("214"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	sceneTitle = cases.Title(language.English)
)

func (m model) View() string {
	if !m.session.Started() {
		return titleStyle.Render("PIXEL-PORTRAIT QUEST") + "\n" +
			dimStyle.Render("Press any key to start. q quits.") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.street())
	b.WriteString("\n")

	if panel := m.panel(); panel != "" {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(panel))
		b.WriteString("\n")
	}

	if n := m.session.Notice(); n.Text != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(n.Text))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m model) header() string {
	goal := "–"
	if g, ok := m.session.Goal(); ok {
		goal = g.Label
	}
	title := titleStyle.Render(sceneTitle.String(m.session.SceneName()))
	line := fmt.Sprintf("Goal: %s   Money: %s   Bag: %s",
		goal, common.FormatMoney(m.session.Money()), m.session.InventorySummary())
	return title + "\n" + hudStyle.Render(line)
}

// street draws the active scene as one row of cells with doors marked by the
// first letter of their name.
func (m model) street() string {
	sc := m.session.Scene()
	row := []rune(strings.Repeat("_", streetCols))
	for _, d := range sc.Doors {
		mark := '#'
		if name := []rune(strings.ToUpper(d.Name)); len(name) > 0 {
			mark = name[0]
		}
		row[column(d.PX)] = mark
	}
	player := column(m.session.PlayerPX())

	var b strings.Builder
	if _, ok := engine.ExitOn(sc, levels.SideLeft); ok {
		b.WriteString("← ")
	} else {
		b.WriteString("| ")
	}
	for i, r := range row {
		switch {
		case i == player:
			b.WriteString(playerStyle.Render("@"))
		case r != '_':
			b.WriteString(doorStyle.Render(string(r)))
		default:
			b.WriteString(streetStyle.Render(string(r)))
		}
	}
	if _, ok := engine.ExitOn(sc, levels.SideRight); ok {
		b.WriteString(" →")
	} else {
		b.WriteString(" |")
	}
	b.WriteString("\n")

	names := make([]string, len(sc.Doors))
	for i, d := range sc.Doors {
		names[i] = d.Name
		if m.session.Debug().Show {
			names[i] = fmt.Sprintf("%s %.1f%%", d.Name, d.PX*100)
		}
	}
	b.WriteString(dimStyle.Render("  " + strings.Join(names, " · ")))

	if d, ok := m.session.NearbyDoor(); ok && m.session.Overlay().Kind == engine.OverlayNone {
		b.WriteString("\n")
		b.WriteString(doorStyle.Render("  e: " + d.Name))
	}
	return b.String()
}

func column(px float64) int {
	c := int(px * float64(streetCols-1))
	if c < 0 {
		return 0
	}
	if c >= streetCols {
		return streetCols - 1
	}
	return c
}

func (m model) panel() string {
	ov := m.session.Overlay()
	switch ov.Kind {
	case engine.OverlayGoalPicker:
		return goalPanel(m.session.World().Goals)
	case engine.OverlayShop:
		if ov.Shop != nil {
			return shopPanel(ov.Shop, m.session.Money())
		}
	case engine.OverlayEnding:
		if ov.Result != nil {
			return endingPanel(ov.Result)
		}
	}
	return ""
}

func goalPanel(goals []engine.Goal) string {
	var b strings.Builder
	b.WriteString("Who is the portrait for?\n\n")
	for i, g := range goals {
		fmt.Fprintf(&b, "%d. %s\n", i+1, g.Label)
	}
	return strings.TrimRight(b.String(), "\n")
}

func shopPanel(shop *engine.ShopView, money int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(shop.Name))
	b.WriteString("\n")
	if shop.Dialog != "" {
		b.WriteString(wordwrap.String(shop.Dialog, 60))
		b.WriteString("\n\n")
	}
	if len(shop.Items) == 0 {
		b.WriteString("Nothing to buy here.\n")
	} else {
		b.WriteString("What do you need?\n")
		for i, it := range shop.Items {
			fmt.Fprintf(&b, "%d. %s – %s\n", i+1, it.Name, common.FormatMoney(it.Price))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Money: " + common.FormatMoney(money) + "   esc: leave"))
	return b.String()
}

func endingPanel(res *engine.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(string(res.Verdict)))
	b.WriteString("\n")
	b.WriteString(wordwrap.String(res.Note, 60))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Goal: %s • You brought: %s\n\n", res.Goal.Label, res.Brought())
	b.WriteString(dimStyle.Render("r: restart   b: back to streets   y: copy summary"))
	return b.String()
}
