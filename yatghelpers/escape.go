package yatghelpers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/YaCodeDev/GoYaTgHelpers/yaerrors"
)

// MarkdownVersion selects which Telegram Markdown dialect an escape set
// belongs to.
type MarkdownVersion uint8

const (
	MarkdownV1 MarkdownVersion = 1
	MarkdownV2 MarkdownVersion = 2
)

// EntityType narrows the MarkdownV2 escape set for spans that only need a
// reduced set of characters escaped. The zero value means no hint.
type EntityType string

const (
	EntityTypePre         EntityType = "pre"
	EntityTypeCode        EntityType = "code"
	EntityTypeTextLink    EntityType = "text_link"
	EntityTypeCustomEmoji EntityType = "custom_emoji"
)

// ParseMarkdownVersion converts a textual version selector into a
// MarkdownVersion, rejecting anything that is not a decimal 1 or 2.
//
// Example usage:
//
//	version, err := yatghelpers.ParseMarkdownVersion("2")
func ParseMarkdownVersion(raw string) (MarkdownVersion, yaerrors.Error) {
	value, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return 0, yaerrors.FromError(
			http.StatusBadRequest,
			err,
			fmt.Sprintf("parse markdown version: cannot convert %q to an integer", raw),
		)
	}

	version := MarkdownVersion(value)
	if version != MarkdownV1 && version != MarkdownV2 {
		return 0, yaerrors.FromError(
			http.StatusBadRequest,
			ErrUnsupportedMarkdownVersion,
			fmt.Sprintf("parse markdown version: got %d", value),
		)
	}

	return version, nil
}

// EscapeMarkdown escapes Telegram markup symbols in text so it renders
// literally under the given Markdown dialect.
//
// The entityType hint is only meaningful with MarkdownV2: inside pre/code
// spans only backslash and backtick are special, and inside the link part of
// text_link/custom_emoji entities only backslash and the closing parenthesis
// are. Under MarkdownV1 the hint is ignored.
//
// Escaping is a single left-to-right pass; output of a previous escape run is
// escaped again, so the operation is deliberately not idempotent.
//
// Example usage:
//
//	escaped, err := yatghelpers.EscapeMarkdown("a_b.c", yatghelpers.MarkdownV2, "")
func EscapeMarkdown(
	text string,
	version MarkdownVersion,
	entityType EntityType,
) (string, yaerrors.Error) {
	var escapeChars string

	switch version {
	case MarkdownV1:
		escapeChars = markdownV1EscapeChars
	case MarkdownV2:
		switch entityType {
		case EntityTypePre, EntityTypeCode:
			escapeChars = markdownV2CodeEscapeChars
		case EntityTypeTextLink, EntityTypeCustomEmoji:
			escapeChars = markdownV2LinkEscapeChars
		default:
			escapeChars = markdownV2EscapeChars
		}
	default:
		return "", yaerrors.FromError(
			http.StatusBadRequest,
			ErrUnsupportedMarkdownVersion,
			fmt.Sprintf("escape markdown: got version %d", version),
		)
	}

	return escapeWith(text, escapeChars), nil
}

// escapeWith inserts a backslash before every rune of text found in chars.
func escapeWith(text, chars string) string {
	var builder strings.Builder

	builder.Grow(len(text))

	for _, r := range text {
		if strings.ContainsRune(chars, r) {
			builder.WriteByte('\\')
		}

		builder.WriteRune(r)
	}

	return builder.String()
}
