package yatghelpers

import "errors"

var (
	ErrUnsupportedMarkdownVersion  = errors.New("markdown version must be either 1 or 2")
	ErrNotMessageOrUpdate          = errors.New("entity is neither a message nor an update")
	ErrInvalidBotUsername          = errors.New("invalid bot username")
	ErrDeepLinkPayloadTooLong      = errors.New("deep link payload too long")
	ErrDeepLinkPayloadInvalidChars = errors.New("deep link payload contains disallowed characters")
)
