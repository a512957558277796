// Package gachalog talks to the game's gacha record API: it builds the
// paginated log request URLs from an extracted credential parameter set and
// decodes response pages into pull records.
package gachalog

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/wishtally/backend/internal/app/appconfig"
	"github.com/wishtally/backend/internal/model"
)

type Client struct {
	hc      *fasthttp.Client
	timeout time.Duration
}

func NewClient(conf *appconfig.Config) *Client {
	return &Client{
		hc: &fasthttp.Client{
			Name:                "wishtally",
			MaxIdleConnDuration: time.Minute,
		},
		timeout: conf.FetchTimeout,
	}
}

// FetchPage retrieves one gacha log page, ordered newest to oldest.
// Cancellation is observed before the request is issued; an in-flight
// request runs to its timeout.
func (c *Client) FetchPage(ctx context.Context, params FetchParams, kind model.BannerKind, page, size int, endID uint64) ([]model.PullRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uri, err := params.URL(kind, page, size, endID)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("evt.name", "gachalog.fetch").
		Str("banner", string(kind)).
		Int("page", page).
		Uint64("endId", endID).
		Msg("fetching gacha log page")

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := c.hc.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, errors.Wrap(err, "gacha log request failed")
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, errors.Errorf("gacha log request failed: HTTP %d", resp.StatusCode())
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return decodePage(body, kind)
}
