// Package yatghelpers provides convenience helpers for Telegram bots built on
// gotd: escaping text for the Markdown dialects, building user mention
// snippets, classifying message payloads, validating bot usernames and
// composing t.me deep links.
//
// Every helper is a pure function over its arguments. No helper keeps state,
// performs I/O or logs, so all of them are safe to call concurrently.
//
// Example usage:
//
//	url, err := yatghelpers.CreateDeepLinkedURL("JamesTheMockBot", "ref-42", false)
//	if err != nil {
//		// Handle error
//	}
package yatghelpers

import (
	"fmt"
	"html"

	"github.com/YaCodeDev/GoYaTgHelpers/yaerrors"
)

// MentionHTML builds an inline user mention as an HTML anchor. The display
// name is entity-encoded; the user ID is interpolated as-is.
//
// Example usage:
//
//	mention := yatghelpers.MentionHTML(123, "A&B")
//	// `<a href="tg://user?id=123">A&amp;B</a>`
func MentionHTML(userID int64, name string) string {
	return fmt.Sprintf(
		`<a href="`+userLinkFormat+`">%s</a>`,
		userID,
		html.EscapeString(name),
	)
}

// MentionMarkdown builds an inline user mention in Markdown syntax. Under
// MarkdownV1 the name is used verbatim; under MarkdownV2 it is escaped first.
// Unsupported versions propagate the escaper's error.
//
// Example usage:
//
//	mention, err := yatghelpers.MentionMarkdown(123, "A*B", yatghelpers.MarkdownV2)
//	// `[A\*B](tg://user?id=123)`
func MentionMarkdown(
	userID int64,
	name string,
	version MarkdownVersion,
) (string, yaerrors.Error) {
	link := fmt.Sprintf(userLinkFormat, userID)

	if version == MarkdownV1 {
		return fmt.Sprintf("[%s](%s)", name, link), nil
	}

	escaped, err := EscapeMarkdown(name, version, "")
	if err != nil {
		return "", err.Wrap("mention markdown")
	}

	return fmt.Sprintf("[%s](%s)", escaped, link), nil
}
