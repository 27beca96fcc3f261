// Package chatbot wires the Messenger shop bot from configuration.
package chatbot

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/NextMind-AI/shopbot-go/commerce"
	"github.com/NextMind-AI/shopbot-go/config"
	"github.com/NextMind-AI/shopbot-go/conversation"
	"github.com/NextMind-AI/shopbot-go/execution"
	"github.com/NextMind-AI/shopbot-go/messenger"
	"github.com/NextMind-AI/shopbot-go/nlu"
	"github.com/NextMind-AI/shopbot-go/openai"
	"github.com/NextMind-AI/shopbot-go/processor"
	"github.com/NextMind-AI/shopbot-go/redis"
	"github.com/NextMind-AI/shopbot-go/server"

	"github.com/rs/zerolog/log"
)

const sweepInterval = time.Minute

// Chatbot represents the main chatbot instance
type Chatbot struct {
	config           *config.Config
	messageProcessor *processor.MessageProcessor
	server           *server.Server

	// closers release stores and background loops on Shutdown.
	closers []func() error
}

// New creates every client from cfg and the server that drives them.
func New(cfg *config.Config) (*Chatbot, error) {
	httpClient := &http.Client{Timeout: cfg.CallTimeout}

	messengerClient := messenger.NewClient(
		cfg.PageAccessToken,
		cfg.GraphAPIURL,
		httpClient,
	)

	commerceClient := commerce.NewClient(commerce.Config{
		ProductURL: cfg.ProductURL,
		PhoneURL:   cfg.PhoneURL,
		PaymentURL: cfg.PaymentURL,
		SMSURL:     cfg.SMSURL,
		ClientID:   cfg.APIClientID,
	}, httpClient)

	classifier, err := newClassifier(cfg, httpClient)
	if err != nil {
		return nil, err
	}

	bot := &Chatbot{config: cfg}

	store, err := bot.newStore(cfg)
	if err != nil {
		return nil, err
	}

	executionManager := execution.NewManager()

	bot.messageProcessor = processor.NewMessageProcessor(
		&messengerClient,
		commerceClient,
		classifier,
		store,
		executionManager,
		processor.Options{
			ServerURL:   cfg.ServerURL,
			PhoneRegion: cfg.PhoneRegion,
			Currency:    cfg.Currency,
		},
	)

	bot.server = server.New(server.Config{
		AppSecret:       cfg.AppSecret,
		ValidationToken: cfg.ValidationToken,
	}, bot.messageProcessor, commerceClient)

	return bot, nil
}

func newClassifier(cfg *config.Config, httpClient *http.Client) (nlu.Classifier, error) {
	switch cfg.NLUProvider {
	case config.NLUProviderWit:
		return nlu.NewWitClient(cfg.WitToken, cfg.WitURL, cfg.WitAPIVersion, httpClient), nil
	case config.NLUProviderOpenAI:
		return openai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel, httpClient), nil
	default:
		return nil, fmt.Errorf("unsupported NLU provider %q", cfg.NLUProvider)
	}
}

func (c *Chatbot) newStore(cfg *config.Config) (conversation.Store, error) {
	switch cfg.StateStore {
	case config.StateStoreRedis:
		redisClient, err := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.StateTTL)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, redisClient.Close)
		return redisClient, nil

	case config.StateStoreMemory:
		store := conversation.NewMemoryStore(cfg.StateTTL)
		ctx, cancel := context.WithCancel(context.Background())
		go store.RunSweeper(ctx, sweepInterval)
		c.closers = append(c.closers, func() error {
			cancel()
			return nil
		})
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported state store %q", cfg.StateStore)
	}
}

// Start starts the chatbot server and blocks until it stops.
func (c *Chatbot) Start() error {
	log.Info().
		Str("nlu_provider", c.config.NLUProvider).
		Str("state_store", c.config.StateStore).
		Dur("state_ttl", c.config.StateTTL).
		Msg("Shopbot configured")

	return c.server.Start(c.config.Port)
}

// Shutdown stops the server and releases the conversation store.
func (c *Chatbot) Shutdown(ctx context.Context) error {
	err := c.server.Shutdown(ctx)
	for _, closeFn := range c.closers {
		if closeErr := closeFn(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
