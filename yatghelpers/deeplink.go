package yatghelpers

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/YaCodeDev/GoYaTgHelpers/yaerrors"
)

// CreateDeepLinkedURL composes a https://t.me deep link that opens a chat
// with the given bot and hands it the payload as a start parameter. With
// group set, the link prompts the user to pick a group to add the bot to
// instead of opening a one-on-one chat.
//
// The payload may only contain A-Z, a-z, 0-9, underscore and hyphen, and at
// most MaxDeepLinkLength characters. An empty payload yields the bare bot
// link without a query string.
//
// Example usage:
//
//	url, err := yatghelpers.CreateDeepLinkedURL("JamesTheMockBot", "abc-123", false)
//	// "https://t.me/JamesTheMockBot?start=abc-123"
func CreateDeepLinkedURL(
	botUsername string,
	payload string,
	group bool,
) (string, yaerrors.Error) {
	if !IsValidBotUsername(botUsername) {
		return "", yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidBotUsername,
			fmt.Sprintf("create deep linked url: %q is not a valid bot username", botUsername),
		)
	}

	baseURL := deepLinkBase + botUsername

	if payload == "" {
		return baseURL, nil
	}

	if utf8.RuneCountInString(payload) > MaxDeepLinkLength {
		return "", yaerrors.FromError(
			http.StatusBadRequest,
			ErrDeepLinkPayloadTooLong,
			fmt.Sprintf(
				"create deep linked url: payload must not exceed %d characters",
				MaxDeepLinkLength,
			),
		)
	}

	for _, r := range payload {
		if !isPayloadRune(r) {
			return "", yaerrors.FromError(
				http.StatusBadRequest,
				ErrDeepLinkPayloadInvalidChars,
				"create deep linked url: only A-Z, a-z, 0-9, _ and - are allowed in the payload",
			)
		}
	}

	key := "start"
	if group {
		key = "startgroup"
	}

	return fmt.Sprintf("%s?%s=%s", baseURL, key, payload), nil
}

func isPayloadRune(r rune) bool {
	return isUsernameRune(r) || r == '-'
}
