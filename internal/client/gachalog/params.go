package gachalog

import (
	"net/url"
	"strconv"

	"github.com/wishtally/backend/internal/model"
	"github.com/wishtally/backend/internal/pkg/apperr"
)

// Banner kind to wire gacha_type id, per game.
var (
	hsrGachaTypes = map[model.BannerKind]string{
		model.BannerStandard:  "1",
		model.BannerCharacter: "11",
		model.BannerWeapon:    "12",
	}
	genshinGachaTypes = map[model.BannerKind]string{
		model.BannerStandard:  "200",
		model.BannerCharacter: "301",
		model.BannerWeapon:    "302",
	}
)

// FetchParams is the ready-to-call retrieval parameter set for a player's
// gacha log, extracted upstream from the game client's cached request URL.
// All credential fields are optional: absent fields are simply omitted from
// the built URL and the remote side reports what it is missing.
type FetchParams struct {
	// BaseURL is the gacha log endpoint, scheme through path, without query.
	BaseURL string     `json:"baseUrl" validate:"required,url"`
	Game    model.Game `json:"game" validate:"omitempty,oneof=hsr genshin"`

	AuthKey    string `json:"authKey,omitempty"`
	AuthKeyVer string `json:"authKeyVer,omitempty"`
	SignType   string `json:"signType,omitempty"`
	GameBiz    string `json:"gameBiz,omitempty"`
	Region     string `json:"region,omitempty"`

	// Lang defaults to "en" so item names match rate-up schedules.
	Lang string `json:"lang,omitempty"`
}

// URL builds the page request URL for one banner kind. page is 1-based;
// endID is the draw id cursor, 0 for the newest page.
func (p FetchParams) URL(kind model.BannerKind, page, size int, endID uint64) (string, error) {
	base, err := url.Parse(p.BaseURL)
	if err != nil {
		return "", apperr.ErrInvalidReq.Msg("invalid gacha log URL: %s", err)
	}

	types := hsrGachaTypes
	if p.Game == model.GameGenshin {
		types = genshinGachaTypes
	}
	gachaType, ok := types[kind]
	if !ok {
		return "", apperr.ErrInvalidReq.Msg("unknown banner kind %q", kind)
	}

	q := base.Query()
	setIf := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	setIf("authkey", p.AuthKey)
	setIf("authkey_ver", p.AuthKeyVer)
	setIf("sign_type", p.SignType)
	setIf("game_biz", p.GameBiz)
	setIf("region", p.Region)

	lang := p.Lang
	if lang == "" {
		lang = "en"
	}
	q.Set("lang", lang)
	q.Set("gacha_type", gachaType)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	q.Set("end_id", strconv.FormatUint(endID, 10))

	base.RawQuery = q.Encode()
	return base.String(), nil
}
