package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	b.WriteString("# Render Summary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	b.WriteString("## Totals\n\n")
	b.WriteString("| Item | Value |\n|------|-------|\n")
	fmt.Fprintf(&b, "| Jobs | %d |\n", s.Totals.Jobs)
	fmt.Fprintf(&b, "| Succeeded | %d |\n", s.Totals.Succeeded)
	fmt.Fprintf(&b, "| Failed | %d |\n", s.Totals.Failed)
	fmt.Fprintf(&b, "| Output Size | %s |\n", formatBytes(s.Totals.Bytes))
	fmt.Fprintf(&b, "| Render Time | %d ms |\n", s.Totals.DurationMs)
	if s.Settings.Workers > 0 {
		fmt.Fprintf(&b, "| Workers | %d |\n", s.Settings.Workers)
	}
	if s.Settings.ConfigPath != "" {
		fmt.Fprintf(&b, "| Config | `%s` |\n", s.Settings.ConfigPath)
	}
	b.WriteString("\n")

	if len(s.Jobs) == 0 {
		b.WriteString("No jobs were run.\n")
		return b.String()
	}

	b.WriteString("## Jobs\n\n")
	b.WriteString("| Name | Kind | Texture | Output | Size | Bytes | Time |\n")
	b.WriteString("|------|------|---------|--------|------|-------|------|\n")
	for _, j := range s.Jobs {
		if j.Failed() {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | failed | - | %d ms |\n",
				escape(j.Name), j.Kind, dash(j.Texture), escape(j.Output), j.DurationMs)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %dx%d | %s | %d ms |\n",
			escape(j.Name), j.Kind, dash(j.Texture), escape(j.Output), j.Width, j.Height, formatBytes(int64(j.Bytes)), j.DurationMs)
	}

	if s.Totals.Failed > 0 {
		b.WriteString("\n## Errors\n\n")
		for _, j := range s.Jobs {
			if j.Failed() {
				fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", escape(j.Name), j.Input, j.Error)
			}
		}
	}

	return b.String()
}

var _ Formatter = (*MarkdownFormatter)(nil)

func formatLayout(w, h int, layer string) string {
	return fmt.Sprintf("%dx%d %s", w, h, layer)
}

func formatBytes(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
