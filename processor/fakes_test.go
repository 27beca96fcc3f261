package processor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NextMind-AI/shopbot-go/commerce"
	"github.com/NextMind-AI/shopbot-go/conversation"
	"github.com/NextMind-AI/shopbot-go/execution"
	"github.com/NextMind-AI/shopbot-go/messenger"
	"github.com/NextMind-AI/shopbot-go/nlu"
)

var errBackend = errors.New("backend unavailable")

type sentMessage struct {
	Kind     string
	To       string
	Text     string
	Buttons  []messenger.Button
	Elements []messenger.Element
	Receipt  *messenger.Receipt
	Replies  []messenger.QuickReply
}

type fakeMessenger struct {
	mu      sync.Mutex
	sent    []sentMessage
	profile *messenger.UserProfile
	err     error
}

func (f *fakeMessenger) record(msg sentMessage) (*messenger.MessageResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, msg)
	return &messenger.MessageResponse{RecipientID: msg.To, MessageID: "mid"}, nil
}

func (f *fakeMessenger) SendTextMessage(_ context.Context, recipientID, text string) (*messenger.MessageResponse, error) {
	return f.record(sentMessage{Kind: "text", To: recipientID, Text: text})
}

func (f *fakeMessenger) SendButtonMessage(_ context.Context, recipientID, text string, buttons []messenger.Button) (*messenger.MessageResponse, error) {
	return f.record(sentMessage{Kind: "button", To: recipientID, Text: text, Buttons: buttons})
}

func (f *fakeMessenger) SendGenericMessage(_ context.Context, recipientID string, elements ...messenger.Element) (*messenger.MessageResponse, error) {
	return f.record(sentMessage{Kind: "generic", To: recipientID, Elements: elements})
}

func (f *fakeMessenger) SendReceiptMessage(_ context.Context, recipientID string, receipt messenger.Receipt) (*messenger.MessageResponse, error) {
	return f.record(sentMessage{Kind: "receipt", To: recipientID, Receipt: &receipt})
}

func (f *fakeMessenger) SendQuickReplies(_ context.Context, recipientID, text string, replies []messenger.QuickReply) (*messenger.MessageResponse, error) {
	return f.record(sentMessage{Kind: "quick_replies", To: recipientID, Text: text, Replies: replies})
}

func (f *fakeMessenger) GetUserProfile(_ context.Context, userID string) (*messenger.UserProfile, error) {
	if f.profile == nil {
		return nil, errBackend
	}
	return f.profile, nil
}

func (f *fakeMessenger) messages() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sent...)
}

func (f *fakeMessenger) texts() []string {
	var texts []string
	for _, msg := range f.messages() {
		if msg.Kind == "text" {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

func (f *fakeMessenger) last() sentMessage {
	msgs := f.messages()
	if len(msgs) == 0 {
		return sentMessage{}
	}
	return msgs[len(msgs)-1]
}

type fakeCommerce struct {
	mu sync.Mutex

	products     []commerce.Product
	product      *commerce.Product
	phones       []commerce.Phone
	payment      *commerce.Payment
	searchErr    error
	registerErr  error
	listPhoneErr error
	paymentErr   error

	searches      []string
	registered    []string
	notifications []commerce.Notification
	payments      []commerce.PaymentRequest
	sms           []commerce.SMS
}

func (f *fakeCommerce) SearchProducts(_ context.Context, name string) ([]commerce.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, name)
	return f.products, f.searchErr
}

func (f *fakeCommerce) GetProduct(_ context.Context, productID string) (*commerce.Product, error) {
	if f.product == nil {
		return nil, errBackend
	}
	return f.product, nil
}

func (f *fakeCommerce) RegisterNotification(_ context.Context, notification commerce.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeCommerce) ListPhones(_ context.Context, userID string) ([]commerce.Phone, error) {
	return f.phones, f.listPhoneErr
}

func (f *fakeCommerce) RegisterPhone(_ context.Context, userID, number string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, number)
	return f.registerErr
}

func (f *fakeCommerce) CreatePayment(_ context.Context, request commerce.PaymentRequest) (*commerce.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments = append(f.payments, request)
	if f.paymentErr != nil {
		return nil, f.paymentErr
	}
	return f.payment, nil
}

func (f *fakeCommerce) SendSMS(_ context.Context, sms commerce.SMS) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sms = append(f.sms, sms)
	return nil
}

type fakeClassifier struct {
	classification *nlu.Classification
	err            error
}

func (f *fakeClassifier) Classify(_ context.Context, text string) (*nlu.Classification, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.classification, nil
}

type testProcessor struct {
	*MessageProcessor
	messenger  *fakeMessenger
	commerce   *fakeCommerce
	classifier *fakeClassifier
	store      *conversation.MemoryStore
}

func newTestProcessor(t *testing.T) *testProcessor {
	t.Helper()
	tp := &testProcessor{
		messenger: &fakeMessenger{
			profile: &messenger.UserProfile{ID: "42", FirstName: "Ana", LastName: "Souza"},
		},
		commerce:   &fakeCommerce{},
		classifier: &fakeClassifier{},
		store:      conversation.NewMemoryStore(time.Hour),
	}
	tp.MessageProcessor = NewMessageProcessor(tp.messenger, tp.commerce, tp.classifier, tp.store, execution.NewManager(), Options{
		ServerURL:   "https://bot.example.com/",
		PhoneRegion: "BR",
		Currency:    "BRL",
	})
	return tp
}

func (tp *testProcessor) state(userID string) conversation.State {
	return tp.store.Load(context.Background(), userID)
}

func textEvent(userID, text string) Delivery {
	return Delivery{
		Object: ObjectPage,
		Entry: []Entry{{
			ID:        "page-1",
			Messaging: []Event{{Sender: Participant{ID: userID}, Message: &Message{MID: "mid.1", Text: text}}},
		}},
	}
}

func postbackEvent(userID string, payload Postback) Delivery {
	return Delivery{
		Object: ObjectPage,
		Entry: []Entry{{
			ID:        "page-1",
			Messaging: []Event{{Sender: Participant{ID: userID}, Postback: &PostbackEvent{Payload: string(payload)}}},
		}},
	}
}
