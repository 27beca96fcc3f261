package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/NextMind-AI/shopbot-go/conversation"
	"github.com/NextMind-AI/shopbot-go/messenger"

	"github.com/rs/zerolog/log"
)

// lookupUsername caches the user's display name from the platform profile.
func (mp *MessageProcessor) lookupUsername(ctx context.Context, userID string, state conversation.State) (conversation.State, error) {
	if state.Username != "" {
		return state, nil
	}

	profile, err := mp.messengerClient.GetUserProfile(ctx, userID)
	if err != nil {
		return state, fmt.Errorf("failed to look up user profile: %w", err)
	}

	state.Username = displayName(profile)
	return state, nil
}

func displayName(profile *messenger.UserProfile) string {
	return strings.TrimSpace(profile.FirstName + " " + profile.LastName)
}

// reply sends a plain text message, logging failures.
func (mp *MessageProcessor) reply(ctx context.Context, userID, text string) {
	if _, err := mp.messengerClient.SendTextMessage(ctx, userID, text); err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("text", text).
			Msg("Error sending text message")
	}
}

func (mp *MessageProcessor) replyNotUnderstood(ctx context.Context, userID string) {
	mp.reply(ctx, userID, textNotUnderstood)
}

func (mp *MessageProcessor) sendText(ctx context.Context, userID, text string) error {
	if _, err := mp.messengerClient.SendTextMessage(ctx, userID, text); err != nil {
		return fmt.Errorf("failed to send text message: %w", err)
	}
	return nil
}
