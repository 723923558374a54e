package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fullplanes/internal/domain/search"
	"fullplanes/internal/infra"
	"fullplanes/internal/pkg/config"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const flightOffersPath = "/v2/shopping/flight-offers"

// maxErrorBody caps how much of a failed response is kept for logging.
const maxErrorBody = 2048

type offersResponse struct {
	Data []search.RawOffer `json:"data"`
}

// Client queries the Amadeus flight-offers API. Tokens are fetched and refreshed by oauth2.
type Client struct {
	http        *http.Client
	baseURL     string
	maxAttempts int
	backoff     time.Duration
	logger      *slog.Logger
}

// NewClient builds an authenticated client. ctx must outlive the client because token refreshes use it.
func NewClient(ctx context.Context, cfg config.AmadeusConfig, logger *slog.Logger) *Client {
	base := &http.Client{Timeout: cfg.Timeout}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	httpClient := cc.Client(context.WithValue(ctx, oauth2.HTTPClient, base))
	httpClient.Timeout = cfg.Timeout

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	return &Client{
		http:        httpClient,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		maxAttempts: attempts,
		backoff:     cfg.InitialBackoff,
		logger:      logger,
	}
}

// SearchOffers fetches non-stop single-adult offers for one day. Rate limits, 5xx and network
// errors are retried with exponential backoff; everything else fails on the first attempt.
func (c *Client) SearchOffers(ctx context.Context, origin, destination string, date time.Time) ([]search.RawOffer, error) {
	day := date.Format(search.DateLayout)
	attrs := []any{
		slog.String("origin", origin),
		slog.String("destination", destination),
		slog.String("date", day),
	}

	var offers []search.RawOffer
	attempt := 0
	op := func() error {
		attempt++
		result, err := c.fetch(ctx, origin, destination, day)
		if err != nil {
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		offers = result
		return nil
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Warn("provider request failed, retrying",
			append(attrs,
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", c.maxAttempts),
				slog.Duration("wait", wait),
				slog.String("error", err.Error()))...)
	}

	if err := backoff.RetryNotify(op, c.retryPolicy(ctx), notify); err != nil {
		var ierr infra.Error
		if errors.As(err, &ierr) {
			return nil, infra.Wrap(c.logger, ierr.Kind, "flight offers query failed", err, attrs...)
		}
		return nil, infra.Wrap(c.logger, infra.KindUnavailable, "flight offers query failed", err, attrs...)
	}

	for i := range offers {
		offers[i].Schema = search.OfferSchemaV2
	}
	return offers, nil
}

func (c *Client) retryPolicy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.backoff
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxAttempts-1)), ctx)
}

func (c *Client) fetch(ctx context.Context, origin, destination, day string) ([]search.RawOffer, error) {
	q := url.Values{}
	q.Set("originLocationCode", origin)
	q.Set("destinationLocationCode", destination)
	q.Set("departureDate", day)
	q.Set("adults", "1")
	q.Set("nonStop", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+flightOffersPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, infra.NewError(infra.KindMalformedRequest, "build request", err)
	}
	req.Header.Set("Accept", "application/vnd.amadeus+json, application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) {
			if rerr.Response != nil && rerr.Response.StatusCode >= 500 {
				return nil, infra.NewError(infra.KindUnavailable, "token endpoint unavailable", err)
			}
			// Credential details stay out of the error text
			return nil, infra.NewError(infra.KindAuthFailure, "token request rejected", nil)
		}
		return nil, infra.NewError(infra.KindUnavailable, "request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusBadRequest:
		// The API answers 400 when a route has no offers for the day
		return nil, infra.NewError(infra.KindNoOffers, "no offers", statusError(resp))
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, infra.NewError(infra.KindAuthFailure, "credentials rejected", statusError(resp))
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, infra.NewError(infra.KindRateLimited, "rate limited", statusError(resp))
	case resp.StatusCode >= 500:
		return nil, infra.NewError(infra.KindUnavailable, "server error", statusError(resp))
	default:
		return nil, infra.NewError(infra.KindMalformedRequest, "request rejected", statusError(resp))
	}

	var body offersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, backoff.Permanent(infra.NewError(infra.KindUnavailable, "decode flight offers", err))
	}
	return body.Data, nil
}

func retryable(err error) bool {
	var ierr infra.Error
	if !errors.As(err, &ierr) {
		return true
	}
	return ierr.Kind == infra.KindRateLimited || ierr.Kind == infra.KindUnavailable
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
