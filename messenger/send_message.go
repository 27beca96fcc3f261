package messenger

import (
	"context"

	"github.com/rs/zerolog/log"
)

func (c *Client) SendTextMessage(ctx context.Context, recipientID, text string) (*MessageResponse, error) {
	return c.send(ctx, recipientID, Message{Text: text, Metadata: "TEXT_MESSAGE"})
}

func (c *Client) SendQuickReplies(ctx context.Context, recipientID, text string, replies []QuickReply) (*MessageResponse, error) {
	return c.send(ctx, recipientID, Message{Text: text, QuickReplies: replies})
}

func (c *Client) send(ctx context.Context, recipientID string, message Message) (*MessageResponse, error) {
	response, err := c.sendMessageRequest(ctx, SendRequest{
		Recipient:     Recipient{ID: recipientID},
		MessagingType: "RESPONSE",
		Message:       message,
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("recipient_id", response.RecipientID).
		Str("message_id", response.MessageID).
		Msg("Message sent")

	return response, nil
}
