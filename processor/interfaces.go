package processor

import (
	"context"

	"github.com/NextMind-AI/shopbot-go/commerce"
	"github.com/NextMind-AI/shopbot-go/messenger"
)

// MessengerClient define os métodos necessários do cliente Messenger
type MessengerClient interface {
	SendTextMessage(ctx context.Context, recipientID, text string) (*messenger.MessageResponse, error)
	SendButtonMessage(ctx context.Context, recipientID, text string, buttons []messenger.Button) (*messenger.MessageResponse, error)
	SendGenericMessage(ctx context.Context, recipientID string, elements ...messenger.Element) (*messenger.MessageResponse, error)
	SendReceiptMessage(ctx context.Context, recipientID string, receipt messenger.Receipt) (*messenger.MessageResponse, error)
	SendQuickReplies(ctx context.Context, recipientID, text string, replies []messenger.QuickReply) (*messenger.MessageResponse, error)
	GetUserProfile(ctx context.Context, userID string) (*messenger.UserProfile, error)
}

// CatalogClient define os métodos necessários do catálogo de produtos
type CatalogClient interface {
	SearchProducts(ctx context.Context, name string) ([]commerce.Product, error)
	GetProduct(ctx context.Context, productID string) (*commerce.Product, error)
	RegisterNotification(ctx context.Context, notification commerce.Notification) error
}

// PhoneRegistryClient define os métodos necessários do cadastro de telefones
type PhoneRegistryClient interface {
	ListPhones(ctx context.Context, userID string) ([]commerce.Phone, error)
	RegisterPhone(ctx context.Context, userID, number string) error
}

type PaymentClient interface {
	CreatePayment(ctx context.Context, request commerce.PaymentRequest) (*commerce.Payment, error)
}

type SMSClient interface {
	SendSMS(ctx context.Context, sms commerce.SMS) error
}

// CommerceClient groups every backend the flow actions call.
type CommerceClient interface {
	CatalogClient
	PhoneRegistryClient
	PaymentClient
	SMSClient
}
