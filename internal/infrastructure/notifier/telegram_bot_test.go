package notifier_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"house_price/internal/infrastructure/notifier"
)

const testToken = "123456789:AAEhBOweik6ad9r_QXMENQjcrGbqCr4K-0w"

type telegramStub struct {
	mu     sync.Mutex
	paths  []string
	bodies []string
}

func (s *telegramStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.paths = append(s.paths, r.URL.Path)
	s.bodies = append(s.bodies, string(body))
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`)
}

func TestStartupReportDegraded(t *testing.T) {
	rq := require.New(t)

	rq.False(notifier.StartupReport{Locations: 240, ModelReady: true}.Degraded())
	rq.True(notifier.StartupReport{Locations: 0, ModelReady: true}.Degraded())
	rq.True(notifier.StartupReport{Locations: 240, ModelReady: false}.Degraded())
}

func TestSendStartupAlert(t *testing.T) {
	rq := require.New(t)

	stub := &telegramStub{}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	bot, err := notifier.NewTelegramBot(testToken, 42, telego.WithAPIServer(srv.URL), telego.WithDiscardLogger())
	rq.NoError(err)

	err = bot.SendStartupAlert(context.Background(), notifier.StartupReport{
		AppName:       "house-price",
		AppVersion:    "1.4.0",
		DatasetSource: "csv:Cleaned_data.csv",
		Locations:     0,
		ModelSource:   "redis:house-price:model",
		ModelReady:    false,
	})
	rq.NoError(err)

	rq.Len(stub.paths, 1)
	rq.True(strings.HasSuffix(stub.paths[0], "/sendMessage"), stub.paths[0])
	rq.Contains(stub.bodies[0], "house-price 1.4.0 started degraded")
	rq.Contains(stub.bodies[0], "csv:Cleaned_data.csv")
	rq.Contains(stub.bodies[0], "redis:house-price:model")
	rq.Contains(stub.bodies[0], `"chat_id":42`)
}

func TestNewTelegramBotRejectsToken(t *testing.T) {
	rq := require.New(t)

	_, err := notifier.NewTelegramBot("not-a-token", 42)
	rq.Error(err)
}
