package gachalog

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/wishtally/backend/internal/model"
	"github.com/wishtally/backend/internal/pkg/apperr"
)

// wireTimeLayout is the naive local timestamp format of the gacha log API.
const wireTimeLayout = "2006-01-02 15:04:05"

// decodePage parses one gacha log response body into pull records, newest
// first as served. A non-zero retcode is surfaced as a remote-response error
// carrying the remote message.
func decodePage(body []byte, kind model.BannerKind) ([]model.PullRecord, error) {
	if !gjson.ValidBytes(body) {
		return nil, apperr.ErrRemoteResponse.Msg("malformed gacha log response")
	}

	root := gjson.ParseBytes(body)
	if retcode := root.Get("retcode"); !retcode.Exists() || retcode.Int() != 0 {
		msg := root.Get("message").String()
		if msg == "" {
			msg = "unknown remote error"
		}
		return nil, apperr.ErrRemoteResponse.Msg("%s", msg)
	}

	// HSR serves the page under data.list, older Genshin deployments under
	// data.entries; accept either.
	list := root.Get("data.list")
	if !list.Exists() || len(list.Array()) == 0 {
		if alt := root.Get("data.entries"); alt.Exists() {
			list = alt
		}
	}

	records := make([]model.PullRecord, 0, len(list.Array()))
	var decodeErr error
	list.ForEach(func(_, entry gjson.Result) bool {
		rec, err := decodeRecord(entry, kind)
		if err != nil {
			decodeErr = err
			return false
		}
		records = append(records, rec)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return records, nil
}

func decodeRecord(entry gjson.Result, kind model.BannerKind) (model.PullRecord, error) {
	t, err := time.ParseInLocation(wireTimeLayout, entry.Get("time").String(), time.Local)
	if err != nil {
		return model.PullRecord{}, errors.Wrapf(err, "invalid entry time %q", entry.Get("time").String())
	}

	return model.PullRecord{
		UID:      entry.Get("uid").Uint(),
		ID:       entry.Get("id").Uint(),
		Banner:   kind,
		GachaID:  uint32(entry.Get("gacha_id").Uint()),
		ItemID:   uint32(entry.Get("item_id").Uint()),
		Name:     entry.Get("name").String(),
		Category: categoryOf(entry.Get("item_type").String()),
		Rarity:   int(entry.Get("rank_type").Int()),
		Time:     t,
	}, nil
}

func categoryOf(itemType string) model.ItemCategory {
	switch strings.ToLower(itemType) {
	case "character":
		return model.CategoryCharacter
	default:
		// weapons and light cones are the only other drawable class
		return model.CategoryWeapon
	}
}
