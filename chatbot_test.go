package chatbot

import (
	"context"
	"testing"
	"time"

	"github.com/NextMind-AI/shopbot-go/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            "0",
		AppSecret:       "secret",
		ValidationToken: "token",
		PageAccessToken: "page-token",
		GraphAPIURL:     "https://graph.example.com",
		ServerURL:       "https://bot.example.com",
		NLUProvider:     config.NLUProviderWit,
		WitToken:        "wit-token",
		WitURL:          "https://wit.example.com",
		OpenAIKey:       "sk-test",
		OpenAIModel:     "gpt-4.1-mini",
		ProductURL:      "https://catalog.example.com",
		PhoneURL:        "https://phones.example.com",
		PaymentURL:      "https://payments.example.com",
		SMSURL:          "https://sms.example.com",
		APIClientID:     "client",
		PhoneRegion:     "BR",
		Currency:        "BRL",
		StateStore:      config.StateStoreMemory,
		StateTTL:        30 * time.Minute,
		CallTimeout:     time.Second,
	}
}

func TestNew_MemoryStore(t *testing.T) {
	bot, err := New(testConfig())
	require.NoError(t, err)
	assert.NotNil(t, bot.messageProcessor)
	assert.NotNil(t, bot.server)
	assert.Len(t, bot.closers, 1)

	// The server was never started; only the store must be released.
	_ = bot.Shutdown(context.Background())
}

func TestNew_RedisStoreWithOpenAI(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig()
	cfg.StateStore = config.StateStoreRedis
	cfg.RedisAddr = mr.Addr()
	cfg.NLUProvider = config.NLUProviderOpenAI

	bot, err := New(cfg)
	require.NoError(t, err)
	assert.Len(t, bot.closers, 1)
	_ = bot.Shutdown(context.Background())
}

func TestNew_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(cfg *config.Config)
	}{
		{"unknown nlu provider", func(cfg *config.Config) { cfg.NLUProvider = "dialogflow" }},
		{"unknown store", func(cfg *config.Config) { cfg.StateStore = "etcd" }},
		{"unreachable redis", func(cfg *config.Config) {
			cfg.StateStore = config.StateStoreRedis
			cfg.RedisAddr = "127.0.0.1:1"
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(cfg)
			_, err := New(cfg)
			assert.Error(t, err)
		})
	}
}
