package yatghelpers

// Platform limits published for Telegram bots.
const (
	// MinBotUsernameLength covers a 1-character base name plus the required
	// "bot" suffix. BotFather documents 5 but actually accepts 4.
	MinBotUsernameLength = 4

	// MaxBotUsernameLength is the longest username BotFather accepts.
	MaxBotUsernameLength = 32

	// MaxDeepLinkLength is the longest start payload a t.me deep link accepts.
	MaxDeepLinkLength = 64
)

const (
	botUsernameSuffix = "bot"
	deepLinkBase      = "https://t.me/"
	userLinkFormat    = "tg://user?id=%d"
)

// Escape sets per Markdown dialect and entity hint; see EscapeMarkdown.
const (
	markdownV1EscapeChars     = "_*`["
	markdownV2EscapeChars     = "\\_*[]()~`>#+-=|{}.!"
	markdownV2CodeEscapeChars = "\\`"
	markdownV2LinkEscapeChars = "\\)"
)
