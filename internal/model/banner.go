package model

// BannerKind identifies one of the three draw pools. Each kind keeps its own
// ledger and its own pity ceilings.
type BannerKind string

const (
	BannerStandard  BannerKind = "standard"
	BannerCharacter BannerKind = "character"
	BannerWeapon    BannerKind = "weapon"
)

// BannerKinds lists all kinds in their canonical processing order.
var BannerKinds = []BannerKind{BannerStandard, BannerCharacter, BannerWeapon}

func (b BannerKind) Valid() bool {
	switch b {
	case BannerStandard, BannerCharacter, BannerWeapon:
		return true
	}
	return false
}

// Pity5Ceiling returns the guaranteed-by draw count for 5-star items.
// The weapon banner guarantees ten draws earlier than the other two.
func (b BannerKind) Pity5Ceiling() int {
	if b == BannerWeapon {
		return 80
	}
	return 90
}

// Pity4Ceiling returns the guaranteed-by draw count for 4-star items.
func (b BannerKind) Pity4Ceiling() int {
	return 10
}

// Game selects which game profile's gacha log is tracked. The two games share
// banner semantics but differ in API endpoints, wire type ids and data
// directories.
type Game string

const (
	GameHSR     Game = "hsr"
	GameGenshin Game = "genshin"
)

func (g Game) Valid() bool {
	return g == GameHSR || g == GameGenshin
}

// DirName is the per-game subdirectory user data and event schedules live in.
func (g Game) DirName() string {
	switch g {
	case GameHSR:
		return "HSR"
	case GameGenshin:
		return "Genshin"
	}
	return string(g)
}
