// Package tui renders leads and monitor rows as terminal tables.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/similigh/bounty-hunter/internal/monitor"
	"github.com/similigh/bounty-hunter/internal/payout"
	"github.com/similigh/bounty-hunter/internal/triage"
)

var (
	primaryColor = lipgloss.Color("#ff7300")
	subtleColor  = lipgloss.Color("#626262")
	successColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF0000")

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	noteStyle = lipgloss.NewStyle().
			Foreground(subtleColor)
)

// actionStyles highlights actions that need the operator.
var actionStyles = map[payout.Action]lipgloss.Style{
	payout.ActionComplete:      cellStyle.Foreground(successColor),
	payout.ActionRequestPayout: cellStyle.Foreground(primaryColor).Bold(true),
	payout.ActionAddressReview: cellStyle.Foreground(errorColor),
}

// RenderLeads renders ranked leads as a table.
func RenderLeads(generatedAt string, leads []triage.Lead) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(fmt.Sprintf("Bounty leads (%d)", len(leads))))
	s.WriteString("\n")

	if len(leads) == 0 {
		s.WriteString(noteStyle.Render("no leads found") + "\n")
		return s.String()
	}

	rows := make([][]string, 0, len(leads))
	for i, l := range leads {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			"#" + strconv.Itoa(l.Number),
			l.Title,
			formatFloat(l.RewardRTC, 3),
			"$" + formatFloat(l.RewardUSD, 2),
			string(l.Difficulty),
			formatFloat(l.CapabilityFit, 3),
			formatFloat(l.Score, 3),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(subtleColor)).
		Headers("RANK", "ISSUE", "TITLE", "RTC", "USD", "DIFFICULTY", "FIT", "SCORE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	s.WriteString(t.String() + "\n")
	s.WriteString(noteStyle.Render("generated at "+generatedAt) + "\n")
	return s.String()
}

// RenderMonitorRows renders monitor rows as a table. A non-empty note is
// shown in place of the table.
func RenderMonitorRows(generatedAt string, rows []monitor.Row, note string) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(fmt.Sprintf("Payout monitor (%d)", len(rows))))
	s.WriteString("\n")

	if len(rows) == 0 {
		if note == "" {
			note = "nothing to monitor"
		}
		s.WriteString(noteStyle.Render(note) + "\n")
		return s.String()
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		pr := r.PR
		if pr == "" {
			pr = "-"
		}
		cells = append(cells, []string{
			r.Label,
			r.IssueState,
			pr,
			r.PRState,
			strconv.FormatBool(r.Merged),
			string(r.PayoutSignal),
			string(r.PayoutAction),
		})
	}

	const actionCol = 6
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(subtleColor)).
		Headers("TARGET", "ISSUE", "PR", "PR STATE", "MERGED", "SIGNAL", "ACTION").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == actionCol && row >= 0 && row < len(rows) {
				if style, ok := actionStyles[rows[row].PayoutAction]; ok {
					return style
				}
			}
			return cellStyle
		})

	s.WriteString(t.String() + "\n")
	s.WriteString(noteStyle.Render("generated at "+generatedAt) + "\n")
	return s.String()
}

func formatFloat(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}
