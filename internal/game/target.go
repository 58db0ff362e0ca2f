package game

import "strings"

// Длина загаданного числа
const targetLength = 3

// SanitizeTarget оставляет только цифры и обрезает до трех символов
func SanitizeTarget(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if b.Len() == targetLength {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidTarget ровно три десятичные цифры
func IsValidTarget(s string) bool {
	if len(s) != targetLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
