package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/together-notify/internal/domain"
	"github.com/bnema/together-notify/internal/ports"
	"github.com/go-resty/resty/v2"
)

const userAgent = "together-notify"

// Fetcher performs a single GET of the shared state document. A zero timeout
// leaves the client default in place.
type Fetcher struct {
	client *resty.Client
	url    string
}

var _ ports.StateSource = (*Fetcher)(nil)

func NewFetcher(url string, timeout time.Duration) (*Fetcher, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("shared state url is empty")
	}

	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Fetcher{client: client, url: url}, nil
}

func (f *Fetcher) Fetch(ctx context.Context) (domain.GlobalState, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.url)
	if err != nil {
		return domain.GlobalState{}, fmt.Errorf("%w: GET %s: %w", domain.ErrFetchFailure, f.url, err)
	}

	if !resp.IsSuccess() {
		return domain.GlobalState{}, fmt.Errorf("%w: GET %s: status %d: %s", domain.ErrFetchFailure, f.url, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	state, err := domain.ParseGlobalState(resp.Body())
	if err != nil {
		return domain.GlobalState{}, fmt.Errorf("decode shared state: %w", err)
	}

	return state, nil
}
