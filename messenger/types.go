package messenger

const (
	TemplateButton  = "button"
	TemplateGeneric = "generic"
	TemplateReceipt = "receipt"

	ButtonPostback = "postback"
	ButtonWebURL   = "web_url"
)

type Config struct {
	PageAccessToken string
	GraphAPIURL     string
}

type Recipient struct {
	ID string `json:"id"`
}

type SendRequest struct {
	Recipient     Recipient `json:"recipient"`
	MessagingType string    `json:"messaging_type,omitempty"`
	Message       Message   `json:"message"`
}

type Message struct {
	Text         string       `json:"text,omitempty"`
	Metadata     string       `json:"metadata,omitempty"`
	Attachment   *Attachment  `json:"attachment,omitempty"`
	QuickReplies []QuickReply `json:"quick_replies,omitempty"`
}

type Attachment struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type Button struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Payload string `json:"payload,omitempty"`
	URL     string `json:"url,omitempty"`
}

type QuickReply struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title"`
	Payload     string `json:"payload"`
}

type ButtonTemplate struct {
	TemplateType string   `json:"template_type"`
	Text         string   `json:"text"`
	Buttons      []Button `json:"buttons"`
}

type Element struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Buttons  []Button `json:"buttons,omitempty"`
}

type GenericTemplate struct {
	TemplateType string    `json:"template_type"`
	Elements     []Element `json:"elements"`
}

type ReceiptElement struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Quantity int     `json:"quantity,omitempty"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
	ImageURL string  `json:"image_url,omitempty"`
}

type ReceiptSummary struct {
	TotalCost float64 `json:"total_cost"`
}

type Receipt struct {
	TemplateType  string           `json:"template_type"`
	RecipientName string           `json:"recipient_name"`
	OrderNumber   string           `json:"order_number"`
	Currency      string           `json:"currency"`
	PaymentMethod string           `json:"payment_method"`
	Elements      []ReceiptElement `json:"elements"`
	Summary       ReceiptSummary   `json:"summary"`
}

type MessageResponse struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id"`
}

type UserProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
