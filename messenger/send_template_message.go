package messenger

import "context"

// SendButtonMessage sends a text with up to three buttons.
func (c *Client) SendButtonMessage(ctx context.Context, recipientID, text string, buttons []Button) (*MessageResponse, error) {
	return c.sendTemplate(ctx, recipientID, ButtonTemplate{
		TemplateType: TemplateButton,
		Text:         text,
		Buttons:      buttons,
	})
}

// SendGenericMessage sends a card carousel.
func (c *Client) SendGenericMessage(ctx context.Context, recipientID string, elements ...Element) (*MessageResponse, error) {
	return c.sendTemplate(ctx, recipientID, GenericTemplate{
		TemplateType: TemplateGeneric,
		Elements:     elements,
	})
}

func (c *Client) SendReceiptMessage(ctx context.Context, recipientID string, receipt Receipt) (*MessageResponse, error) {
	receipt.TemplateType = TemplateReceipt
	return c.sendTemplate(ctx, recipientID, receipt)
}

func (c *Client) sendTemplate(ctx context.Context, recipientID string, payload any) (*MessageResponse, error) {
	return c.send(ctx, recipientID, Message{
		Attachment: &Attachment{
			Type:    "template",
			Payload: payload,
		},
	})
}
