// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"fmt"
)

// FormatMinutesSeconds форматирует секунды в формат MM:SS без переноса в часы,
// поэтому минут может быть больше 59
func FormatMinutesSeconds(seconds int) string {
	minutes := seconds / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatDurationFromSeconds форматирует продолжительность в секундах в формат HH:MM:SS,
// а если часов нет, то в MM:SS
func FormatDurationFromSeconds(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// TruncateString обрезает строку до указанной длины, добавляя "..." если строка длиннее
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
