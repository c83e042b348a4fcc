package collatzbench

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

// consoleStyles are bound to one writer so color detection follows the
// destination (plain text for files and buffers).
type consoleStyles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	rule    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

func newConsoleStyles(w io.Writer) consoleStyles {
	r := lipgloss.NewRenderer(w)
	return consoleStyles{
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		label:   r.NewStyle().Bold(true),
		rule:    r.NewStyle().Foreground(colorMuted),
		success: r.NewStyle().Bold(true).Foreground(colorSuccess),
		warning: r.NewStyle().Bold(true).Foreground(colorWarning),
		failure: r.NewStyle().Bold(true).Foreground(colorError),
	}
}

func (s consoleStyles) section(w io.Writer, title string, width int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.rule.Render(strings.Repeat("=", width)))
	fmt.Fprintln(w, s.title.Render(title))
	fmt.Fprintln(w, s.rule.Render(strings.Repeat("=", width)))
}

// RenderRunHeader prints the banner shown before sampling starts.
func RenderRunHeader(w io.Writer, cfg Config) {
	s := newConsoleStyles(w)

	fmt.Fprintln(w, s.title.Render("🎯 COLLATZ CONJECTURE GEOMETRIC VERIFICATION"))
	fmt.Fprintln(w, s.rule.Render(strings.Repeat("=", 60)))
	fmt.Fprintf(w, "🔬 Sample Size:   %s sequences\n", humanize.Comma(int64(cfg.SampleSize)))
	fmt.Fprintf(w, "⏳ Maximum N:     %s\n", humanize.Comma(int64(cfg.MaxStart)))
	fmt.Fprintf(w, "🛑 Iteration Cap: %s\n", humanize.Comma(int64(cfg.IterationCap)))
	fmt.Fprintln(w, s.rule.Render(strings.Repeat("=", 60)))
}

// RenderConsole prints every metric followed by the interpretation.
func RenderConsole(w io.Writer, m Metrics, in Interpretation) {
	s := newConsoleStyles(w)
	line := func(label, format string, args ...any) {
		fmt.Fprintf(w, "• %s %s\n", s.label.Render(fmt.Sprintf("%-26s", label+":")), fmt.Sprintf(format, args...))
	}

	s.section(w, "📊 COLLATZ GEOMETRIC VERIFICATION - RESULTS", 70)
	line("Sequences Analyzed", "%s / %s", humanize.Comma(int64(m.ConvergedCount)), humanize.Comma(int64(m.SampleSize)))
	line("Success Rate", "%.2f%%", m.SuccessRate)
	line("Mean Ratio (R_prom)", "%.6f", m.MeanRatio)
	line("Critical Threshold (R_c)", "%.6f", m.RCritical)
	line("Flow Curvature (K_F)", "%.6f", m.Curvature)
	line("Standard Deviation (σ)", "%.6f", m.StdDev)
	line("Safety Margin", "%.2f%%", m.SafetyMargin)
	line("Ratio Range", "%.3f - %.3f", m.MinRatio, m.MaxRatio)
	line("Execution Time", "%.2f seconds", m.ExecutionTime.Seconds())

	s.section(w, "🔍 GEOMETRIC INTERPRETATION", 70)
	switch in.Status {
	case StatusStrongPositive:
		fmt.Fprintln(w, s.success.Render("✅ "+in.Label.Headline))
	case StatusPositive:
		fmt.Fprintln(w, s.warning.Render("✅ "+in.Label.Headline))
	default:
		fmt.Fprintln(w, s.failure.Render("❌ "+in.Label.Headline))
	}
	for _, note := range in.Label.Notes {
		fmt.Fprintf(w, "   → %s\n", note)
	}
}

// RenderVerdict prints the closing block for runs with positive curvature.
// Nothing is printed otherwise.
func RenderVerdict(w io.Writer, in Interpretation, a Attribution) {
	if !in.Positive() {
		return
	}

	s := newConsoleStyles(w)
	s.section(w, "🎉 VERIFICATION SUCCESSFUL", 70)
	fmt.Fprintln(w, "✅ Geometric framework validated")
	fmt.Fprintln(w, "✅ Empirical evidence recorded")
	fmt.Fprintln(w)
	if a.Repository != "" {
		fmt.Fprintf(w, "🔗 Repository: %s\n", a.Repository)
	}
	if a.Researcher != "" {
		fmt.Fprintf(w, "📧 Researcher: %s\n", a.Researcher)
	}
	if a.Year != 0 {
		fmt.Fprintf(w, "📅 Year: %d\n", a.Year)
	}
}
