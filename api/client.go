package api

import (
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/wealthnest/client-go/store"
	"github.com/wealthnest/client-go/utils/logger"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	// BaseURL is the API root, e.g. "https://api.wealthnest.example/api/v1".
	BaseURL string
	Timeout time.Duration
}

// Client wraps the wealthnest REST API. Every request reads the current access
// token from the token store and attaches it as a bearer credential, so a token
// written by one client instance is picked up by all of them.
type Client struct {
	http   *resty.Client
	tokens store.TokenStore
}

func NewClient(cfg Config, tokens store.TokenStore) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	httpClient.JSONMarshal = json.Marshal
	httpClient.JSONUnmarshal = json.Unmarshal

	c := &Client{http: httpClient, tokens: tokens}

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		// Requests that set their own bearer token (token refresh) win.
		if req.Token != "" || c.tokens == nil {
			return nil
		}
		token, err := c.tokens.Load(req.Context())
		if err != nil {
			if !errors.Is(err, store.ErrNoToken) {
				logger.LogWarn("token store read failed", zap.Error(err))
			}
			return nil
		}
		if token.AccessToken != "" {
			req.SetAuthToken(token.AccessToken)
		}
		return nil
	})

	return c
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		return newError(resp)
	}
	return nil
}
