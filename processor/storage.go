package processor

import (
	"context"

	"github.com/NextMind-AI/shopbot-go/conversation"

	"github.com/rs/zerolog/log"
)

// step is one flow action. It receives the current state and returns the
// state later steps observe.
type step func(ctx context.Context, userID string, state conversation.State) (conversation.State, error)

// runFlow loads the user's state, applies steps in order until one fails,
// and saves whatever the completed steps produced. Any non-empty state is
// saved so its lifetime restarts on every flow. A failure is logged and
// answered with the generic failure reply.
func (mp *MessageProcessor) runFlow(ctx context.Context, userID, name string, steps ...step) {
	state := mp.store.Load(ctx, userID)
	loaded := state

	var flowErr error
	for _, s := range steps {
		next, err := s(ctx, userID, state)
		if err != nil {
			flowErr = err
			break
		}
		state = next
	}

	if state != loaded || !loaded.IsEmpty() {
		if err := mp.store.Save(ctx, userID, state); err != nil {
			log.Ctx(ctx).Error().
				Err(err).
				Str("flow", name).
				Msg("Error saving conversation state")
		}
	}

	if flowErr != nil {
		log.Ctx(ctx).Error().
			Err(flowErr).
			Str("flow", name).
			Msg("Flow failed")
		mp.replyNotUnderstood(ctx, userID)
		return
	}

	log.Ctx(ctx).Debug().Str("flow", name).Msg("Flow completed")
}
