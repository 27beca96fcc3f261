package processor

import (
	"context"
	"errors"

	"github.com/NextMind-AI/shopbot-go/nlu"
	"github.com/NextMind-AI/shopbot-go/phone"

	"github.com/rs/zerolog/log"
)

type intentHandler func(ctx context.Context, userID string, intent nlu.Intent)

func (mp *MessageProcessor) intentHandlers() map[nlu.IntentName]intentHandler {
	return map[nlu.IntentName]intentHandler{
		nlu.IntentGreetings: mp.handleGreetings,
		nlu.IntentBuy:       mp.handleBuy,
		nlu.IntentPhone:     mp.handlePhone,
	}
}

// DispatchIntents acts on every classified intent in rank order. Each intent
// runs on its own, so one failing never stops the next.
func (mp *MessageProcessor) DispatchIntents(ctx context.Context, userID string, classification *nlu.Classification) {
	if classification == nil || len(classification.Intents) == 0 {
		log.Ctx(ctx).Info().Msg("No intent classified")
		mp.replyNotUnderstood(ctx, userID)
		return
	}

	for _, intent := range classification.Intents {
		if !intent.Name.Known() {
			log.Ctx(ctx).Warn().
				Str("intent", string(intent.Name)).
				Msg("Unknown intent")
			mp.replyNotUnderstood(ctx, userID)
			continue
		}

		log.Ctx(ctx).Info().
			Str("intent", string(intent.Name)).
			Float64("confidence", intent.Confidence).
			Msg("Dispatching intent")
		mp.intents[intent.Name](ctx, userID, intent)
	}
}

func (mp *MessageProcessor) handleGreetings(ctx context.Context, userID string, _ nlu.Intent) {
	mp.runFlow(ctx, userID, "greetings", mp.lookupUsername, mp.sendWelcome)
}

func (mp *MessageProcessor) handleBuy(ctx context.Context, userID string, intent nlu.Intent) {
	if intent.Entities.Product == "" {
		log.Ctx(ctx).Debug().Msg("Buy intent without product")
		return
	}
	mp.runFlow(ctx, userID, "search_product", mp.searchProduct(intent.Entities.Product))
}

func (mp *MessageProcessor) handlePhone(ctx context.Context, userID string, intent nlu.Intent) {
	number, err := phone.Normalize(intent.Entities.PhoneNumber, mp.options.PhoneRegion)
	switch {
	case errors.Is(err, phone.ErrMissingNumber):
		log.Ctx(ctx).Debug().Msg("Phone intent without number")
		return
	case err != nil:
		log.Ctx(ctx).Warn().
			Err(err).
			Msg("Invalid phone number")
		mp.reply(ctx, userID, textInvalidPhone)
		return
	}

	mp.runFlow(ctx, userID, "register_phone", mp.registerPhone(number), mp.askPaymentMethod)
}
