package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/valyala/fasthttp"
	"golang.org/x/mod/semver"

	"github.com/wishtally/backend/internal/app/appconfig"
	"github.com/wishtally/backend/internal/pkg/bininfo"
)

// UpdateResult describes the latest published release relative to the running
// binary.
type UpdateResult struct {
	Current     string `json:"current"`
	Latest      string `json:"latest"`
	URL         string `json:"url,omitempty"`
	UpdateAvail bool   `json:"updateAvailable"`
}

// Update checks the project's GitHub releases for a newer version.
type Update struct {
	hc      *fasthttp.Client
	repo    string
	timeout time.Duration
}

func NewUpdate(conf *appconfig.Config) *Update {
	return &Update{
		hc: &fasthttp.Client{
			Name: "wishtally",
		},
		repo:    conf.UpdateRepo,
		timeout: conf.FetchTimeout,
	}
}

// canonicalTag normalizes a release tag for semver comparison: tags are
// published both as "v1.2.3" and "1.2.3".
func canonicalTag(tag string) string {
	if tag == "" {
		return ""
	}
	if tag[0] == 'V' {
		return "v" + tag[1:]
	}
	if tag[0] != 'v' {
		return "v" + tag
	}
	return tag
}

// updateAvailable reports whether latest is a newer version than current,
// pre-release ordering included ("v1.0.0-rc1" precedes "v1.0.0").
func updateAvailable(current, latest string) bool {
	return semver.Compare(canonicalTag(current), canonicalTag(latest)) < 0
}

// Check fetches the latest release tag and compares it with the built-in
// version. A binary built without a parseable version reports no update.
func (u *Update) Check(ctx context.Context) (*UpdateResult, error) {
	var body []byte
	err := retry.Do(func() error {
		if err := ctx.Err(); err != nil {
			return retry.Unrecoverable(err)
		}

		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", u.repo))
		req.Header.SetMethod(fasthttp.MethodGet)
		req.Header.Set("Accept", "application/vnd.github+json")

		if err := u.hc.DoTimeout(req, resp, u.timeout); err != nil {
			return errors.Wrap(err, "release request failed")
		}
		if resp.StatusCode() != fasthttp.StatusOK {
			return errors.Errorf("release request failed: HTTP %d", resp.StatusCode())
		}

		body = make([]byte, len(resp.Body()))
		copy(body, resp.Body())
		return nil
	}, retry.Attempts(3), retry.Delay(time.Second), retry.LastErrorOnly(true))
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(body)
	tag := parsed.Get("tag_name").String()
	result := &UpdateResult{
		Current: bininfo.Version,
		Latest:  tag,
		URL:     parsed.Get("html_url").String(),
	}

	if !semver.IsValid(canonicalTag(tag)) {
		return nil, errors.Errorf("unparseable release tag %q", tag)
	}
	if !semver.IsValid(canonicalTag(bininfo.Version)) {
		log.Debug().
			Str("evt.name", "update.check").
			Str("version", bininfo.Version).
			Msg("running an unversioned build, skipping comparison")
		return result, nil
	}

	result.UpdateAvail = updateAvailable(bininfo.Version, tag)
	return result, nil
}
