// Package ratesclient fetches UAH exchange rates from public bank APIs.
package ratesclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/go-petr/money-guard/pkg/errorspkg"
)

const maxErrorBody = 512

// getJSON requests url and decodes a 200 response body into v.
func getJSON(ctx context.Context, hc *http.Client, url string, v any) error {
	l := zerolog.Ctx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errorspkg.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		l.Warn().Int("status_code", resp.StatusCode).Str("url", url).Str("body", string(body)).Msg("rates request failed")

		return fmt.Errorf("%w: %s returned %d", errorspkg.ErrUpstream, url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", errorspkg.ErrUpstream, url, err)
	}

	return nil
}
