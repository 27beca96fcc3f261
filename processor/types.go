package processor

import "encoding/json"

// ObjectPage is the only delivery object the webhook acts upon.
const ObjectPage = "page"

// Delivery is the webhook envelope posted by the Messenger platform.
type Delivery struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID        string  `json:"id"`
	Time      int64   `json:"time"`
	Messaging []Event `json:"messaging"`
}

// Event is one messaging event. At most one of Message and Postback is set
// for the shapes the router handles.
type Event struct {
	Sender    Participant    `json:"sender"`
	Recipient Participant    `json:"recipient"`
	Timestamp int64          `json:"timestamp"`
	Message   *Message       `json:"message,omitempty"`
	Postback  *PostbackEvent `json:"postback,omitempty"`
}

type Participant struct {
	ID string `json:"id"`
}

type Message struct {
	MID         string       `json:"mid"`
	Text        string       `json:"text,omitempty"`
	IsEcho      bool         `json:"is_echo,omitempty"`
	QuickReply  *QuickReply  `json:"quick_reply,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Attachment struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type QuickReply struct {
	Payload string `json:"payload"`
}

type PostbackEvent struct {
	Title   string `json:"title,omitempty"`
	Payload string `json:"payload"`
}

// ProductNotification is the catalog callback announcing that a product a
// user asked to be notified about is available.
type ProductNotification struct {
	Product  string `json:"product"`
	SenderID string `json:"senderId"`
}
