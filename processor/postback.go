package processor

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Postback is a payload code attached to a button the bot sent.
type Postback string

const (
	PostbackConfirmPurchase     Postback = "COMPRAR_SIM"
	PostbackConfirmPhone        Postback = "INFORMAR_TEL_SIM"
	PostbackDeclinePhone        Postback = "INFORMAR_TEL_NAO"
	PostbackPayCard             Postback = "PAGAR_CARTAO"
	PostbackPayPaypal           Postback = "PAGAR_PAYPAL"
	PostbackAcceptNotification  Postback = "NOTIFICAR_SIM"
	PostbackDeclineNotification Postback = "NOTIFICAR_NAO"
)

// Postbacks lists every payload code the bot emits.
func Postbacks() []Postback {
	return []Postback{
		PostbackConfirmPurchase,
		PostbackConfirmPhone,
		PostbackDeclinePhone,
		PostbackPayCard,
		PostbackPayPaypal,
		PostbackAcceptNotification,
		PostbackDeclineNotification,
	}
}

// Payment providers sent to the payment processor.
const (
	ProviderCard   = "cartao"
	ProviderPaypal = "paypal"
)

type eventHandler func(ctx context.Context, userID string)

func (mp *MessageProcessor) postbackHandlers() map[Postback]eventHandler {
	return map[Postback]eventHandler{
		PostbackConfirmPurchase: func(ctx context.Context, userID string) {
			mp.runFlow(ctx, userID, "confirm_purchase", mp.lookupUsername, mp.resolvePhone)
		},
		PostbackConfirmPhone: func(ctx context.Context, userID string) {
			mp.runFlow(ctx, userID, "confirm_phone", mp.confirmPhone)
		},
		PostbackDeclinePhone: func(ctx context.Context, userID string) {
			mp.runFlow(ctx, userID, "decline_phone", mp.declinePhone)
		},
		PostbackPayCard: func(ctx context.Context, userID string) {
			mp.runFlow(ctx, userID, "receipt", mp.generateReceipt(ProviderCard))
		},
		PostbackPayPaypal: func(ctx context.Context, userID string) {
			mp.runFlow(ctx, userID, "receipt", mp.generateReceipt(ProviderPaypal))
		},
		PostbackAcceptNotification: func(ctx context.Context, userID string) {
			mp.runFlow(ctx, userID, "register_notification", mp.registerNotification)
		},
		PostbackDeclineNotification: func(ctx context.Context, userID string) {
			mp.reply(ctx, userID, textComeBackSoon)
		},
	}
}

// HandlePostback runs the action bound to payload. Unknown payloads get the
// not-understood reply.
func (mp *MessageProcessor) HandlePostback(ctx context.Context, userID, payload string) {
	handler, ok := mp.postbacks[Postback(payload)]
	if !ok {
		log.Ctx(ctx).Warn().
			Str("payload", payload).
			Msg("Unknown postback payload")
		mp.replyNotUnderstood(ctx, userID)
		return
	}

	log.Ctx(ctx).Info().Str("payload", payload).Msg("Handling postback")
	handler(ctx, userID)
}

// Survey answers offered as quick replies after a purchase.
const (
	SurveyGreat = "AVALIACAO_OTIMA"
	SurveyGood  = "AVALIACAO_BOA"
	SurveyBad   = "AVALIACAO_RUIM"
)

func (mp *MessageProcessor) handleQuickReply(ctx context.Context, userID, payload string) {
	switch payload {
	case SurveyGreat, SurveyGood, SurveyBad:
		log.Ctx(ctx).Info().
			Str("rating", payload).
			Msg("Survey answered")
		mp.reply(ctx, userID, textThanksForRating)
	default:
		log.Ctx(ctx).Warn().
			Str("payload", payload).
			Msg("Unknown quick reply payload")
		mp.replyNotUnderstood(ctx, userID)
	}
}
