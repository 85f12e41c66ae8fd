package internal

import "fmt"

// FormatSpan rounds the span so hours are its largest unit and renders it
// as zero-padded "HHh MMm SSs". Sub-second precision is not shown.
func FormatSpan(span Span) (string, error) {
	rounded, err := span.Round()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02dh %02dm %02ds", rounded.Hours, rounded.Minutes, rounded.Seconds), nil
}

// FormatZoned renders a timestamp as "2024-08-10 at 23:14 EDT"
func FormatZoned(z Zoned) string {
	return z.Time().Format("2006-01-02 at 15:04 MST")
}
