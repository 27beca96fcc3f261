package processor

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

type eventKind int

const (
	eventIgnored eventKind = iota
	eventQuickReply
	eventText
	eventAttachment
	eventPostback
)

func (k eventKind) String() string {
	switch k {
	case eventQuickReply:
		return "quick_reply"
	case eventText:
		return "text"
	case eventAttachment:
		return "attachment"
	case eventPostback:
		return "postback"
	default:
		return "ignored"
	}
}

// classifyEvent decides which path handles an event. Quick replies take
// precedence over the text they carry.
func classifyEvent(event Event) eventKind {
	switch {
	case event.Postback != nil:
		return eventPostback
	case event.Message == nil || event.Message.IsEcho:
		return eventIgnored
	case event.Message.QuickReply != nil && event.Message.QuickReply.Payload != "":
		return eventQuickReply
	case strings.TrimSpace(event.Message.Text) != "":
		return eventText
	case len(event.Message.Attachments) > 0:
		return eventAttachment
	default:
		return eventIgnored
	}
}

func (mp *MessageProcessor) handleText(ctx context.Context, userID, text string) {
	log.Ctx(ctx).Info().Str("text", text).Msg("Classifying message")

	classification, err := mp.classifier.Classify(ctx, text)
	if err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Msg("Error classifying message")
		mp.replyNotUnderstood(ctx, userID)
		return
	}

	mp.DispatchIntents(ctx, userID, classification)
}

func (mp *MessageProcessor) handleAttachment(ctx context.Context, userID string, attachments []Attachment) {
	types := make([]string, 0, len(attachments))
	for _, attachment := range attachments {
		types = append(types, attachment.Type)
	}
	log.Ctx(ctx).Warn().
		Strs("attachment_types", types).
		Msg("Unsupported message with attachments")

	mp.reply(ctx, userID, textAttachmentsNotAccepted)
}
