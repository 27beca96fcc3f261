package processor

import (
	"context"
	"strings"

	"github.com/NextMind-AI/shopbot-go/conversation"
	"github.com/NextMind-AI/shopbot-go/execution"
	"github.com/NextMind-AI/shopbot-go/nlu"

	"github.com/rs/zerolog/log"
)

type Options struct {
	// ServerURL is this service's externally reachable base URL, used for
	// product images and backend callbacks.
	ServerURL   string
	PhoneRegion string
	Currency    string
}

type MessageProcessor struct {
	messengerClient  MessengerClient
	commerceClient   CommerceClient
	classifier       nlu.Classifier
	store            conversation.Store
	executionManager *execution.Manager
	options          Options

	postbacks map[Postback]eventHandler
	intents   map[nlu.IntentName]intentHandler
}

func NewMessageProcessor(messengerClient MessengerClient, commerceClient CommerceClient, classifier nlu.Classifier, store conversation.Store, execManager *execution.Manager, options Options) *MessageProcessor {
	options.ServerURL = strings.TrimRight(options.ServerURL, "/")

	mp := &MessageProcessor{
		messengerClient:  messengerClient,
		commerceClient:   commerceClient,
		classifier:       classifier,
		store:            store,
		executionManager: execManager,
		options:          options,
	}
	mp.postbacks = mp.postbackHandlers()
	mp.intents = mp.intentHandlers()
	return mp
}

// HandleDelivery processes every messaging event of a webhook delivery.
// Outcomes are only visible to users through outbound messages.
func (mp *MessageProcessor) HandleDelivery(ctx context.Context, delivery Delivery) {
	if delivery.Object != ObjectPage {
		log.Ctx(ctx).Warn().
			Str("object", delivery.Object).
			Msg("Ignoring delivery for unsupported object")
		return
	}

	for _, entry := range delivery.Entry {
		for _, event := range entry.Messaging {
			mp.handleEvent(ctx, event)
		}
	}
}

func (mp *MessageProcessor) handleEvent(ctx context.Context, event Event) {
	userID := event.Sender.ID
	if userID == "" {
		return
	}

	kind := classifyEvent(event)
	if kind == eventIgnored {
		log.Ctx(ctx).Debug().Str("user_id", userID).Msg("Ignoring messaging event")
		return
	}

	ctx, release, ok := mp.acquire(ctx, userID)
	if !ok {
		return
	}
	defer release()

	log.Ctx(ctx).Debug().Stringer("kind", kind).Msg("Handling messaging event")

	switch kind {
	case eventQuickReply:
		mp.handleQuickReply(ctx, userID, event.Message.QuickReply.Payload)
	case eventText:
		mp.handleText(ctx, userID, strings.TrimSpace(event.Message.Text))
	case eventAttachment:
		mp.handleAttachment(ctx, userID, event.Message.Attachments)
	case eventPostback:
		mp.HandlePostback(ctx, userID, event.Postback.Payload)
	}
}

// Finish runs after the payment processor confirmed a payment for userID:
// it texts the user through SMS and asks for a satisfaction rating.
func (mp *MessageProcessor) Finish(ctx context.Context, userID string) {
	ctx, release, ok := mp.acquire(ctx, userID)
	if !ok {
		return
	}
	defer release()

	log.Ctx(ctx).Info().Msg("Finishing purchase")
	mp.runFlow(ctx, userID, "finish", mp.sendConfirmationSMS, mp.sendSurvey)
}

// ProductAvailable runs when the catalog reports that a product a user asked
// to be notified about can be bought.
func (mp *MessageProcessor) ProductAvailable(ctx context.Context, notification ProductNotification) {
	userID := notification.SenderID
	ctx, release, ok := mp.acquire(ctx, userID)
	if !ok {
		return
	}
	defer release()

	mp.runFlow(ctx, userID, "product_available", mp.presentAvailableProduct(notification.Product))
}

// acquire serializes work for userID and attaches the user to the context
// logger.
func (mp *MessageProcessor) acquire(ctx context.Context, userID string) (context.Context, func(), bool) {
	ctx = log.Ctx(ctx).With().Str("user_id", userID).Logger().WithContext(ctx)

	release, err := mp.executionManager.Acquire(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Msg("Could not acquire user execution")
		return ctx, nil, false
	}
	return ctx, release, true
}
