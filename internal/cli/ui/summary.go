// --- START OF FINAL REVISED FILE internal/cli/ui/summary.go ---
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/stackvity/cucumber-reporting/pkg/reporter"
)

// --- Colors ---
var (
	ColorHeaderFg = lipgloss.Color("255") // White
	ColorHeaderBg = lipgloss.Color("56")  // Dark Pink/Purple
	ColorLabelFg  = lipgloss.Color("244") // Dim gray

	ColorStatusPassed  = lipgloss.Color("40")  // Green
	ColorStatusFailed  = lipgloss.Color("196") // Red
	ColorStatusWarning = lipgloss.Color("214") // Orange/Yellow
)

// --- Styles ---
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeaderFg).
			Background(ColorHeaderBg).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorLabelFg)

	StatusStylePassed  = lipgloss.NewStyle().Bold(true).Foreground(ColorStatusPassed)
	StatusStyleFailed  = lipgloss.NewStyle().Bold(true).Foreground(ColorStatusFailed)
	StatusStyleWarning = lipgloss.NewStyle().Bold(true).Foreground(ColorStatusWarning)
)

// IsTerminal reports whether w is a terminal. Only *os.File writers can be.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// WriteSummary renders report to w in the requested format. Text output is styled only
// when styled is true.
func WriteSummary(w io.Writer, report reporter.RunReport, format reporter.OutputFormat, styled bool) error {
	switch format {
	case reporter.OutputFormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal run report to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case reporter.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to marshal run report to YAML: %w", err)
		}
		return enc.Close()
	case reporter.OutputFormatText, "":
		_, err := io.WriteString(w, RenderText(report, styled))
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// RenderText produces the human readable summary block.
func RenderText(report reporter.RunReport, styled bool) string {
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	b.WriteString(render(HeaderStyle, "Cucumber Report"))
	b.WriteString("\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(render(LabelStyle, fmt.Sprintf("%-12s", label)))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	row("Project:", report.ProjectName)
	row("Build:", report.BuildNumber)
	row("Profile:", report.ProfileUsed)
	row("Input:", report.CucumberOutput)
	row("Files:", fmt.Sprintf("%d", report.FileCount))
	row("Output:", report.OutputDirectory)
	row("Report:", report.ReportPath)
	row("Status:", render(outcomeStyle(report.Outcome), outcomeLabel(report.Outcome)))
	row("Error:", report.Error)
	row("Duration:", fmt.Sprintf("%.2fs", report.DurationSeconds))
	return b.String()
}

func outcomeStyle(o reporter.Outcome) lipgloss.Style {
	switch o {
	case reporter.OutcomePassed:
		return StatusStylePassed
	case reporter.OutcomeBuildFailed, reporter.OutcomeError:
		return StatusStyleFailed
	default:
		return StatusStyleWarning
	}
}

func outcomeLabel(o reporter.Outcome) string {
	switch o {
	case reporter.OutcomePassed:
		return "PASSED"
	case reporter.OutcomeFailedIgnored:
		return "FAILED (ignored, build result check disabled)"
	case reporter.OutcomeBuildFailed:
		return "BUILD FAILED"
	case reporter.OutcomeNoInput:
		return "SKIPPED (no cucumber json files found)"
	case reporter.OutcomeError:
		return "ERROR"
	default:
		return string(o)
	}
}

// --- END OF FINAL REVISED FILE internal/cli/ui/summary.go ---
