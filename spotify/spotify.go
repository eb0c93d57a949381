// Package spotify is a client for the parts of Spotify's web API this
// project uses: playlist search, playlist details and tracks, and batched
// artist lookups for genre data.
//
// The client holds a client-credentials token, refreshing it before expiry,
// and paces every request through a limiter. A 429 response is not an
// error: the client waits out the Retry-After period and tries again.
package spotify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"daylists/limiter"
	"daylists/request"

	"github.com/go-resty/resty/v2"
)

const (
	accountsURL = "https://accounts.spotify.com/api/token"
	apiURL      = "https://api.spotify.com/v1"
)

// New creates a new Spotify client with the given clientID and
// clientSecret, pacing its requests through lim.
func New(clientID, clientSecret string, lim *limiter.Limiter) *Client {
	return &Client{
		http:         resty.New(),
		clientID:     clientID,
		clientSecret: clientSecret,
		limiter:      lim,
	}
}

type Client struct {
	http         *resty.Client
	clientID     string
	clientSecret string
	limiter      *limiter.Limiter

	accessToken string
	expiresAt   time.Time
}

type tokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (spo *Client) token() (string, error) {
	if spo.accessToken == "" || spo.expiresAt.Before(time.Now().Add(time.Second)) {
		if err := spo.fetchToken(); err != nil {
			return "", err
		}
	}
	return spo.accessToken, nil
}

func (spo *Client) fetchToken() error {
	requestAt := time.Now()

	var result tokenResult
	resp, err := spo.http.R().
		SetBasicAuth(spo.clientID, spo.clientSecret).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody("grant_type=client_credentials").
		SetResult(&result).
		Post(accountsURL)
	if err != nil {
		return fmt.Errorf("token request error: %w", err)
	}
	if err := request.Error(resp); err != nil {
		return fmt.Errorf("token fetch error: %w", err)
	}

	spo.accessToken = result.AccessToken
	spo.expiresAt = requestAt.Add(time.Duration(result.ExpiresIn) * time.Second)

	return nil
}

// get performs one paced, authorized GET, decoding the JSON response into
// result. On 429 it records the Retry-After hold and retries; the next
// Wait blocks until the hold expires.
func (spo *Client) get(ctx context.Context, url string, query map[string]string, result any) error {
	for {
		if err := spo.limiter.Wait(ctx); err != nil {
			return err
		}

		token, err := spo.token()
		if err != nil {
			return err
		}

		resp, err := spo.http.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetQueryParams(query).
			SetResult(result).
			Get(url)
		if err != nil {
			return fmt.Errorf("request error: %w", err)
		}

		if resp.StatusCode() == http.StatusTooManyRequests {
			if err := spo.limiter.SetNextAt(resp.Header().Get("Retry-After")); err != nil {
				return err
			}
			continue
		}
		if err := request.Error(resp); err != nil {
			return fmt.Errorf("fetch error: %w", err)
		}

		spo.limiter.Delay()
		return nil
	}
}
