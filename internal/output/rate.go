package output

import (
	"fmt"
	"strings"
)

// RateBar renders a visual bar for a 0-100 acceptance percentage.
// Example: "████████░░ 80.0%"
func RateBar(percent float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((percent / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case percent > 60:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case percent > 40:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.1f%%", percent)))
}

// Percent renders a 0-100 percentage with the same color thresholds as
// RateBar, for use in table cells.
func Percent(percent float64) string {
	text := fmt.Sprintf("%.1f%%", percent)
	switch {
	case percent > 60:
		return StyleSuccess.Render(text)
	case percent > 40:
		return StyleWarning.Render(text)
	default:
		return StyleError.Render(text)
	}
}

// Confidence renders a 0-1 confidence score with a qualitative color:
// green above 0.8, yellow mid-range, red below 0.3.
func Confidence(score float64) string {
	text := fmt.Sprintf("%.2f", score)
	switch {
	case score > 0.8:
		return StyleSuccess.Render(text)
	case score < 0.3:
		return StyleError.Render(text)
	default:
		return StyleWarning.Render(text)
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
