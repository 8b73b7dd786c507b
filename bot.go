// Package tgwire is a typed, lazy client core for the Telegram Bot API.
//
// A Bot is the transport collaborator: it performs one encoded call per
// request and decodes the API envelope. The typed method surface on Bot
// returns requests from the requests package; nothing touches the network
// until a returned future is awaited.
package tgwire

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/elnormous/contenttype"
	"github.com/google/uuid"
	"github.com/joeshaw/envdecode"
	"github.com/tgwire/tgwire/internal/logctx"
	"github.com/tgwire/tgwire/requests"
)

// DefaultAPIURL is the production Bot API endpoint.
const DefaultAPIURL = "https://api.telegram.org"

var (
	ErrEmptyToken = errors.New("bot token must not be empty")

	jsonMediaType = contenttype.NewMediaType("application/json")
)

// Bot performs encoded calls against the Bot API. It implements
// requests.Transport and is safe for concurrent use; any number of requests
// may share one Bot.
type Bot struct {
	token  string
	apiURL string
	client *http.Client
	log    *slog.Logger
}

var _ requests.Transport = (*Bot)(nil)

// Option configures a Bot.
type Option func(*Bot)

// WithBaseURL points the Bot at a non-default API endpoint, such as a local
// Bot API server.
func WithBaseURL(u string) Option {
	return func(b *Bot) { b.apiURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Bot) { b.client = c }
}

// WithLogger sets the logger used for call tracing. The handler is wrapped
// so per-call attributes from the context are attached to every record.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bot) { b.log = l }
}

// New builds a Bot from a token. The token is the only required input;
// everything else has production defaults.
func New(token string, opts ...Option) (*Bot, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	b := &Bot{
		token:  token,
		apiURL: DefaultAPIURL,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = slog.New(logctx.Handler{Handler: b.log.Handler()})
	return b, nil
}

type envConfig struct {
	Token   string        `env:"TELEGRAM_BOT_TOKEN,required"`
	BaseURL string        `env:"TELEGRAM_API_URL,default=https://api.telegram.org"`
	Timeout time.Duration `env:"TELEGRAM_HTTP_TIMEOUT,default=30s"`
}

// NewFromEnv builds a Bot from TELEGRAM_* environment variables. Options are
// applied after the environment, so they win.
func NewFromEnv(opts ...Option) (*Bot, error) {
	var cfg envConfig
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	return New(cfg.Token, append(base, opts...)...)
}

// apiResponse is the Bot API envelope: ok with a result, or an error code
// with a description and optional recovery parameters.
type apiResponse struct {
	OK          bool                         `json:"ok"`
	Result      json.RawMessage              `json:"result,omitempty"`
	ErrorCode   int                          `json:"error_code,omitempty"`
	Description string                       `json:"description,omitempty"`
	Parameters  *requests.ResponseParameters `json:"parameters,omitempty"`
}

// Do performs one encoded call. It implements requests.Transport: the body is
// the JSON-encoded payload, the return value the raw result record. An
// ok=false envelope surfaces as *requests.APIError.
func (b *Bot) Do(ctx context.Context, method string, body []byte) (json.RawMessage, error) {
	callID := uuid.NewString()
	ctx = logctx.WithCallData(ctx, &logctx.CallData{CallID: callID, Method: method})

	endpoint := fmt.Sprintf("%s/bot%s/%s", b.apiURL, b.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", jsonMediaType.String())

	b.log.DebugContext(ctx, "api call", slog.Int("body_bytes", len(body)))
	start := time.Now()

	resp, err := b.client.Do(req)
	if err != nil {
		// url.Error embeds the full endpoint, token included. Keep only
		// the underlying cause.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		b.log.WarnContext(ctx, "api call failed", slog.Any("error", err))
		return nil, fmt.Errorf("post %s: %w", method, err)
	}
	defer resp.Body.Close()

	if ct := contenttype.NewMediaType(resp.Header.Get("Content-Type")); !ct.Matches(jsonMediaType) {
		return nil, fmt.Errorf("unexpected response content type %q", resp.Header.Get("Content-Type"))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env apiResponse
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if !env.OK {
		apiErr := &requests.APIError{
			Code:        env.ErrorCode,
			Description: env.Description,
			Parameters:  env.Parameters,
		}
		b.log.WarnContext(ctx, "api error",
			slog.Int("code", apiErr.Code),
			slog.String("description", apiErr.Description),
		)
		return nil, apiErr
	}

	b.log.DebugContext(ctx, "api call done",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("result_bytes", len(env.Result)),
	)
	return env.Result, nil
}
