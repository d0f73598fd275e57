package yatghelpers

import (
	"strings"
	"unicode/utf8"
)

// IsValidBotUsername reports whether the given string is a valid Telegram bot
// username: 4 to 32 characters, ending in "bot" (case-insensitive), built
// only from Latin letters, digits and underscores, and not starting with an
// underscore or a digit.
//
// The starts-with rules are undocumented and were discovered by interacting
// with @BotFather. An empty string is never valid. This helper deliberately
// returns a bare boolean and never an error.
//
// Example usage:
//
//	ok := yatghelpers.IsValidBotUsername("JamesTheMockBot") // true
func IsValidBotUsername(botUsername string) bool {
	length := utf8.RuneCountInString(botUsername)
	if length < MinBotUsernameLength || length > MaxBotUsernameLength {
		return false
	}

	normalized := strings.ToLower(botUsername)
	if !strings.HasSuffix(normalized, botUsernameSuffix) ||
		normalized[0] == '_' ||
		isASCIIDigit(rune(normalized[0])) {
		return false
	}

	for _, r := range botUsername {
		if !isUsernameRune(r) {
			return false
		}
	}

	return true
}

func isUsernameRune(r rune) bool {
	return isASCIIDigit(r) ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		r == '_'
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
