package tui

import (
	"fmt"
	"strings"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// renderBar renders a progress bar like: ■■■■□□□□ 50%
func renderBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent * float64(width) / 100)
	if filled > width {
		filled = width
	}

	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, width-filled)
	return fmt.Sprintf("%s %d%%", bar, int(percent))
}
