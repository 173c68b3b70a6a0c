package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DoctorCheckStatus mirrors the grading of an environment check.
type DoctorCheckStatus int

const (
	DoctorOK DoctorCheckStatus = iota
	DoctorWarning
	DoctorFailed
)

// DoctorCheck is one row of the report.
type DoctorCheck struct {
	Name   string
	Detail string
	Status DoctorCheckStatus
}

// DoctorReport is everything "dumbwm doctor" found.
type DoctorReport struct {
	OverallOK  bool
	ConfigFile string
	ConfigErr  error
	Checks     []DoctorCheck
}

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.renderHeader(report.OverallOK),
		"",
		r.renderConfig(report),
		"",
		r.renderChecks(report.Checks),
	)
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderConfig(report DoctorReport) string {
	check := DoctorCheck{Name: "Config", Detail: report.ConfigFile}
	if report.ConfigErr != nil {
		check.Status = DoctorFailed
		check.Detail = report.ConfigErr.Error()
	}
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Configuration", r.theme.Highlight.Render(IconConfig)))
	return r.theme.Box.Render(header + "\n" + r.renderCheck(check))
}

func (r *DoctorRenderer) renderChecks(checks []DoctorCheck) string {
	lines := make([]string, 0, len(checks))
	for _, c := range checks {
		lines = append(lines, r.renderCheck(c))
	}
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Environment", r.theme.Highlight.Render(IconWindow)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderCheck(c DoctorCheck) string {
	icon, style, status := IconCheck, r.theme.SuccessStyle, "OK"
	switch c.Status {
	case DoctorWarning:
		icon, style, status = IconWarning, r.theme.WarningStyle, "Warning"
	case DoctorFailed:
		icon, style, status = IconX, r.theme.ErrorStyle, "Failed"
	}

	line := fmt.Sprintf("%s %s %s",
		style.Render(icon),
		r.theme.Normal.Render(c.Name),
		r.theme.BadgeMuted.Render(style.Render(status)),
	)
	if c.Detail != "" {
		line += "\n  " + r.theme.Subtle.Render(c.Detail)
	}
	return line
}
