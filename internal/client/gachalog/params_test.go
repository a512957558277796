package gachalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishtally/backend/internal/model"
)

func TestParamsURL(t *testing.T) {
	p := FetchParams{
		BaseURL:    "https://api-os-takumi.example.com/common/gacha_record/api/getGachaLog",
		Game:       model.GameHSR,
		AuthKey:    "abc123",
		AuthKeyVer: "1",
		SignType:   "2",
		GameBiz:    "hkrpg_global",
		Region:     "prod_official_asia",
	}

	raw, err := p.URL(model.BannerCharacter, 3, 5, 9000001)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()

	assert.Equal(t, "11", q.Get("gacha_type"), "HSR character banner wire id")
	assert.Equal(t, "3", q.Get("page"))
	assert.Equal(t, "5", q.Get("size"))
	assert.Equal(t, "9000001", q.Get("end_id"))
	assert.Equal(t, "abc123", q.Get("authkey"))
	assert.Equal(t, "en", q.Get("lang"), "lang is forced to en by default")
}

func TestParamsURLGenshinTypeIDs(t *testing.T) {
	p := FetchParams{
		BaseURL: "https://hk4e-api.example.com/event/gacha_info/api/getGachaLog",
		Game:    model.GameGenshin,
	}

	tests := []struct {
		kind   model.BannerKind
		expect string
	}{
		{model.BannerStandard, "200"},
		{model.BannerCharacter, "301"},
		{model.BannerWeapon, "302"},
	}
	for _, test := range tests {
		raw, err := p.URL(test.kind, 1, 5, 0)
		require.NoError(t, err)
		u, _ := url.Parse(raw)
		assert.Equal(t, test.expect, u.Query().Get("gacha_type"), "banner %s", test.kind)
	}
}

func TestParamsURLOmitsEmptyCredentials(t *testing.T) {
	p := FetchParams{BaseURL: "https://api.example.com/getGachaLog", Game: model.GameHSR}

	raw, err := p.URL(model.BannerStandard, 1, 5, 0)
	require.NoError(t, err)

	u, _ := url.Parse(raw)
	q := u.Query()
	_, hasAuthKey := q["authkey"]
	assert.False(t, hasAuthKey, "absent optional fields are omitted entirely")
	assert.Equal(t, "1", q.Get("gacha_type"))
}

func TestParamsURLPreservesExistingQuery(t *testing.T) {
	p := FetchParams{
		BaseURL: "https://api.example.com/getGachaLog?win_mode=fullscreen&timestamp=170000",
		Game:    model.GameHSR,
	}

	raw, err := p.URL(model.BannerWeapon, 2, 5, 42)
	require.NoError(t, err)

	u, _ := url.Parse(raw)
	q := u.Query()
	assert.Equal(t, "fullscreen", q.Get("win_mode"), "credential query carried in BaseURL survives")
	assert.Equal(t, "12", q.Get("gacha_type"))
	assert.Equal(t, "42", q.Get("end_id"))
}

func TestParamsURLInvalid(t *testing.T) {
	_, err := FetchParams{BaseURL: "://bad", Game: model.GameHSR}.URL(model.BannerStandard, 1, 5, 0)
	assert.Error(t, err)
}
