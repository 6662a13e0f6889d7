package judgment

import (
	"strconv"

	"github.com/KirkDiggler/voicewatcher/internal/models"
)

// LuckyNumberMax is the upper bound of both the chosen and the rolled number
const LuckyNumberMax = 10

// ParseIndex returns a validator accepting a 1-based position in a list of n entries
func ParseIndex(n int) func(string) (int, bool) {
	return func(raw string) (int, bool) {
		return parseBounded(raw, 1, n)
	}
}

// ParseLuckyNumber accepts an integer from 1 to 10
func ParseLuckyNumber(raw string) (int, bool) {
	return parseBounded(raw, 1, LuckyNumberMax)
}

// ParseAction accepts an action number or name
func ParseAction(raw string) (models.ActionChoice, bool) {
	return models.ParseActionChoice(raw)
}

// parseBounded accepts plain decimal digits only, no sign or spaces
func parseBounded(raw string, lo, hi int) (int, bool) {
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}
