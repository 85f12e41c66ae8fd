package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/playtime/internal"
)

// MarkdownExporter exports an app's ledger as a Markdown table
type MarkdownExporter struct{}

// Export exports an app to Markdown format
func (e *MarkdownExporter) Export(app *internal.App, w io.Writer) error {
	total, err := app.TotalTime()
	if err != nil {
		return err
	}
	totalText, err := internal.FormatSpan(total)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "# %s\n\n", escapeMarkdown(app.Name))
	_, _ = fmt.Fprintf(w, "**Executable:** %s  \n", codeSpan(app.Exe))
	_, _ = fmt.Fprintf(w, "**Sessions:** %d  \n", len(app.Sessions))
	_, _ = fmt.Fprintf(w, "**Recorded total:** %s\n\n", totalText)

	if len(app.Sessions) == 0 {
		_, _ = fmt.Fprintf(w, "_No sessions recorded._\n")
		return nil
	}

	_, _ = fmt.Fprintf(w, "| # | Played on | Duration |\n")
	_, _ = fmt.Fprintf(w, "|---|-----------|----------|\n")
	for i, session := range app.Sessions {
		duration, err := internal.FormatSpan(session.Duration)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "| %d | %s | %s |\n", i+1, internal.FormatZoned(session.Timestamp), duration)
	}

	return nil
}

// escapeMarkdown escapes characters that would break headings and tables
func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer("|", "\\|", "*", "\\*", "_", "\\_", "#", "\\#")
	return replacer.Replace(text)
}

// codeSpan wraps text in an inline code span whose fence is longer than any
// run of backticks inside it.
func codeSpan(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		text = " " + text + " "
	}
	return fence + text + fence
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
