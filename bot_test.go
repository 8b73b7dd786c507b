package tgwire

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tgwire/tgwire/requests"
	"github.com/tgwire/tgwire/types"
)

const testToken = "123456:TEST"

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewRequiresToken(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrEmptyToken) {
		t.Fatalf("New(\"\") = %v, want ErrEmptyToken", err)
	}
}

func TestGetMeRoundTrip(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bot"+testToken+"/getMe" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); !strings.HasPrefix(got, "application/json") {
			t.Errorf("content type = %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":7,"is_bot":true,"first_name":"testbot","username":"test_bot"}}`))
	})

	bot, err := New(testToken, WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	me, err := bot.GetMe().Send().Await(context.Background())
	if err != nil {
		t.Fatalf("getMe failed: %v", err)
	}
	if me.ID != 7 || !me.IsBot || me.Username != "test_bot" {
		t.Fatalf("decoded user = %+v", me)
	}
}

func TestSendMessageEncodesPayload(t *testing.T) {
	var body map[string]any
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":5,"chat":{"id":42,"type":"private"},"date":1,"text":"hi"}}`))
	})

	bot, err := New(testToken, WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	req := bot.SendMessage(types.ChatID(42), "hi")
	req.Payload().WithDisableNotification(true)
	msg, err := req.Send().Await(context.Background())
	if err != nil {
		t.Fatalf("sendMessage failed: %v", err)
	}
	if msg.MessageID != 5 || msg.Text != "hi" {
		t.Fatalf("decoded message = %+v", msg)
	}

	if body["chat_id"] != float64(42) || body["text"] != "hi" || body["disable_notification"] != true {
		t.Fatalf("request body = %v", body)
	}
	if _, present := body["parse_mode"]; present {
		t.Fatal("unset optional field was sent")
	}
}

func TestAPIErrorSurfaces(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 17","parameters":{"retry_after":17}}`))
	})

	bot, err := New(testToken, WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = bot.GetMe().Send().Await(context.Background())
	var reqErr *requests.Error
	if !errors.As(err, &reqErr) || reqErr.Kind != requests.KindAPI {
		t.Fatalf("err = %v, want KindAPI", err)
	}
	var apiErr *requests.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("APIError not in chain: %v", err)
	}
	if apiErr.Code != 429 || apiErr.Parameters == nil || apiErr.Parameters.RetryAfter != 17 {
		t.Fatalf("api error = %+v", apiErr)
	}
}

func TestRejectsNonJSONResponse(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	})

	bot, err := New(testToken, WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = bot.GetMe().Send().Await(context.Background())
	var reqErr *requests.Error
	if !errors.As(err, &reqErr) || reqErr.Kind != requests.KindTransport {
		t.Fatalf("err = %v, want KindTransport", err)
	}
}

func TestTransportErrorOmitsToken(t *testing.T) {
	bot, err := New(testToken, WithBaseURL("http://127.0.0.1:1"))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = bot.GetMe().Send().Await(context.Background())
	if err == nil {
		t.Fatal("call against closed port succeeded")
	}
	if strings.Contains(err.Error(), testToken) {
		t.Fatalf("error leaks the bot token: %v", err)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", testToken)
	t.Setenv("TELEGRAM_API_URL", "http://example.invalid")
	t.Setenv("TELEGRAM_HTTP_TIMEOUT", "5s")

	bot, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv() failed: %v", err)
	}
	if bot.apiURL != "http://example.invalid" {
		t.Fatalf("apiURL = %s", bot.apiURL)
	}
	if bot.token != testToken {
		t.Fatalf("token = %s", bot.token)
	}
}

func TestSendRefReusesOneRequestAcrossTargets(t *testing.T) {
	var chatIDs []float64
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		chatIDs = append(chatIDs, body["chat_id"].(float64))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"chat":{"id":1,"type":"private"},"date":1}}`))
	})

	bot, err := New(testToken, WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	req := bot.SendMessage(types.ChatID(0), "broadcast")
	for _, id := range []int64{10, 20, 30} {
		req.Payload().ChatID = types.ChatID(id)
		if _, err := req.SendRef().Await(context.Background()); err != nil {
			t.Fatalf("send to %d failed: %v", id, err)
		}
	}

	want := []float64{10, 20, 30}
	if len(chatIDs) != 3 || chatIDs[0] != want[0] || chatIDs[1] != want[1] || chatIDs[2] != want[2] {
		t.Fatalf("chat ids = %v, want %v", chatIDs, want)
	}
}
