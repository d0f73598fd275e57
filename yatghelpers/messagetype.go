package yatghelpers

import (
	"fmt"
	"net/http"

	"github.com/YaCodeDev/GoYaTgHelpers/yaerrors"
	"github.com/gotd/td/tg"
)

// MessageType is a string tag identifying the payload carried by a message.
type MessageType string

const (
	MessageTypeAnimation MessageType = "animation"
	MessageTypeAudio     MessageType = "audio"
	MessageTypeContact   MessageType = "contact"
	MessageTypeDice      MessageType = "dice"
	MessageTypeDocument  MessageType = "document"
	MessageTypeGame      MessageType = "game"
	MessageTypeInvoice   MessageType = "invoice"
	MessageTypeLocation  MessageType = "location"
	MessageTypePhoto     MessageType = "photo"
	MessageTypePoll      MessageType = "poll"
	MessageTypeSticker   MessageType = "sticker"
	MessageTypeStory     MessageType = "story"
	MessageTypeText      MessageType = "text"
	MessageTypeVenue     MessageType = "venue"
	MessageTypeVideo     MessageType = "video"
	MessageTypeVideoNote MessageType = "video_note"
	MessageTypeVoice     MessageType = "voice"
)

type messageTypeCheck struct {
	messageType MessageType
	matches     func(*tg.Message) bool
}

// messageTypeChecks is the classification order. It is an ordered slice on
// purpose: the first matching tag wins, so the attribute-specific document
// tags must precede the plain document catch-all, and text comes last so a
// caption never shadows its media. The order deliberately differs from the
// Bot API field listing, where payload fields are exclusive; do not re-sort
// it alphabetically.
var messageTypeChecks = []messageTypeCheck{
	{MessageTypeAnimation, func(m *tg.Message) bool {
		return hasDocumentAttribute(m, func(attr tg.DocumentAttributeClass) bool {
			_, ok := attr.(*tg.DocumentAttributeAnimated)

			return ok
		})
	}},
	{MessageTypeAudio, func(m *tg.Message) bool {
		return hasDocumentAttribute(m, func(attr tg.DocumentAttributeClass) bool {
			audio, ok := attr.(*tg.DocumentAttributeAudio)

			return ok && !audio.Voice
		})
	}},
	{MessageTypeContact, mediaIs[*tg.MessageMediaContact]},
	{MessageTypeDice, mediaIs[*tg.MessageMediaDice]},
	{MessageTypeGame, mediaIs[*tg.MessageMediaGame]},
	{MessageTypeInvoice, mediaIs[*tg.MessageMediaInvoice]},
	{MessageTypeLocation, func(m *tg.Message) bool {
		return mediaIs[*tg.MessageMediaGeo](m) || mediaIs[*tg.MessageMediaGeoLive](m)
	}},
	{MessageTypePhoto, mediaIs[*tg.MessageMediaPhoto]},
	{MessageTypePoll, mediaIs[*tg.MessageMediaPoll]},
	{MessageTypeSticker, func(m *tg.Message) bool {
		return hasDocumentAttribute(m, func(attr tg.DocumentAttributeClass) bool {
			_, ok := attr.(*tg.DocumentAttributeSticker)

			return ok
		})
	}},
	{MessageTypeStory, mediaIs[*tg.MessageMediaStory]},
	{MessageTypeVenue, mediaIs[*tg.MessageMediaVenue]},
	{MessageTypeVideo, func(m *tg.Message) bool {
		return hasDocumentAttribute(m, func(attr tg.DocumentAttributeClass) bool {
			video, ok := attr.(*tg.DocumentAttributeVideo)

			return ok && !video.RoundMessage
		})
	}},
	{MessageTypeVideoNote, func(m *tg.Message) bool {
		return hasDocumentAttribute(m, func(attr tg.DocumentAttributeClass) bool {
			video, ok := attr.(*tg.DocumentAttributeVideo)

			return ok && video.RoundMessage
		})
	}},
	{MessageTypeVoice, func(m *tg.Message) bool {
		return hasDocumentAttribute(m, func(attr tg.DocumentAttributeClass) bool {
			audio, ok := attr.(*tg.DocumentAttributeAudio)

			return ok && audio.Voice
		})
	}},
	{MessageTypeDocument, mediaIs[*tg.MessageMediaDocument]},
	{MessageTypeText, func(m *tg.Message) bool {
		return m.Message != ""
	}},
}

// EffectiveMessageType extracts the payload type of a message or of the
// effective message of an update. The entity must be either a *tg.Message or
// a tg.UpdateClass; anything else is rejected. An empty MessageType with a
// nil error means the entity carries no classifiable message.
//
// Example usage:
//
//	messageType, err := yatghelpers.EffectiveMessageType(update)
//	if err != nil {
//		// Handle error
//	}
func EffectiveMessageType(entity any) (MessageType, yaerrors.Error) {
	var msg *tg.Message

	switch e := entity.(type) {
	case *tg.Message:
		msg = e
	case tg.UpdateClass:
		resolved, ok := EffectiveMessage(e)
		if !ok {
			return "", nil
		}

		msg = resolved
	default:
		return "", yaerrors.FromError(
			http.StatusUnprocessableEntity,
			ErrNotMessageOrUpdate,
			fmt.Sprintf("effective message type: got %T", entity),
		)
	}

	messageType, _ := MessageTypeOf(msg)

	return messageType, nil
}

// MessageTypeOf classifies the payload of a single message. It returns the
// first matching tag in classification order and false if nothing matches.
//
// Example usage:
//
//	messageType, ok := yatghelpers.MessageTypeOf(msg)
//
//	if ok {
//		// process messageType
//	}
func MessageTypeOf(msg *tg.Message) (MessageType, bool) {
	if msg == nil {
		return "", false
	}

	for _, check := range messageTypeChecks {
		if check.matches(msg) {
			return check.messageType, true
		}
	}

	return "", false
}

// EffectiveMessage tries to extract the *tg.Message carried by the given
// update, covering new and edited messages in both chats and channels.
// It returns the message and true if successful, otherwise nil and false.
//
// Example usage:
//
//	msg, ok := yatghelpers.EffectiveMessage(update)
//
//	if ok {
//		// process msg
//	}
func EffectiveMessage(upd tg.UpdateClass) (*tg.Message, bool) {
	var message tg.MessageClass

	switch u := upd.(type) {
	case *tg.UpdateNewMessage:
		message = u.Message
	case *tg.UpdateNewChannelMessage:
		message = u.Message
	case *tg.UpdateEditMessage:
		message = u.Message
	case *tg.UpdateEditChannelMessage:
		message = u.Message
	default:
		return nil, false
	}

	if msg, ok := message.(*tg.Message); ok {
		return msg, true
	}

	return nil, false
}

func mediaIs[T tg.MessageMediaClass](msg *tg.Message) bool {
	_, ok := msg.Media.(T)

	return ok
}

func hasDocumentAttribute(
	msg *tg.Message,
	matches func(tg.DocumentAttributeClass) bool,
) bool {
	media, ok := msg.Media.(*tg.MessageMediaDocument)
	if !ok {
		return false
	}

	document, ok := media.Document.(*tg.Document)
	if !ok {
		return false
	}

	for _, attr := range document.Attributes {
		if matches(attr) {
			return true
		}
	}

	return false
}
