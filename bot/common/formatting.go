package common

import (
	"fmt"
	"strings"
)

// FormatPercent formats a probability percentage for display
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.2f%%", percent)
}

// FormatRecord formats a win/loss record
func FormatRecord(wins, losses int) string {
	return fmt.Sprintf("%d-%d", wins, losses)
}

// TruncateName shortens a card or deck name for fixed-width tables.
// Counts runes, not bytes, so accented card names survive intact.
func TruncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// CodeBlock wraps preformatted table content for Discord
func CodeBlock(content string) string {
	var b strings.Builder
	b.WriteString("```\n")
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```")
	return b.String()
}
