package model

import (
	"sort"

	"github.com/goccy/go-json"
)

// Item carries the item-only fields of a pull. Identity is (ItemID, Name), so
// the same item drawn on several banners groups into one entry when merging.
type Item struct {
	ItemID   uint32       `json:"itemId"`
	Name     string       `json:"name"`
	Rarity   int          `json:"rarity"`
	Category ItemCategory `json:"category"`
}

func ItemOf(rec PullRecord) Item {
	return Item{
		ItemID:   rec.ItemID,
		Name:     rec.Name,
		Rarity:   rec.Rarity,
		Category: rec.Category,
	}
}

// ItemMap groups processed pulls by the item they yielded.
type ItemMap struct {
	m    map[Item]map[PullKey]ProcessedPull
	size int
}

func NewItemMap() *ItemMap {
	return &ItemMap{m: map[Item]map[PullKey]ProcessedPull{}}
}

// Add registers the pull under its item and returns the number of pulls now
// recorded for that item. Duplicate pull identities are ignored.
func (im *ItemMap) Add(pull ProcessedPull) int {
	item := ItemOf(pull.PullRecord)
	set, ok := im.m[item]
	if !ok {
		set = map[PullKey]ProcessedPull{}
		im.m[item] = set
	}
	if _, exists := set[pull.Key()]; !exists {
		set[pull.Key()] = pull
		im.size++
	}
	return len(set)
}

// Size is the total number of pulls across all items.
func (im *ItemMap) Size() int {
	return im.size
}

// Items returns the distinct items, sorted by rarity descending then name.
func (im *ItemMap) Items() []Item {
	items := make([]Item, 0, len(im.m))
	for item := range im.m {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Rarity != items[j].Rarity {
			return items[i].Rarity > items[j].Rarity
		}
		return items[i].Name < items[j].Name
	})
	return items
}

// Pulls returns the pulls recorded for the given item, in natural order.
func (im *ItemMap) Pulls(item Item) []ProcessedPull {
	set := im.m[item]
	out := make([]ProcessedPull, 0, len(set))
	for _, p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PullRecord.Less(out[j].PullRecord)
	})
	return out
}

// Merge returns a new ItemMap combining both inputs. Pull sets of items
// appearing in both are unioned. Neither input is mutated.
func (im *ItemMap) Merge(other *ItemMap) *ItemMap {
	out := NewItemMap()
	for _, src := range []*ItemMap{im, other} {
		for _, set := range src.m {
			for _, pull := range set {
				out.Add(pull)
			}
		}
	}
	return out
}

type itemGroupJSON struct {
	Item  Item            `json:"item"`
	Count int             `json:"count"`
	Pulls []ProcessedPull `json:"pulls"`
}

func (im *ItemMap) MarshalJSON() ([]byte, error) {
	groups := make([]itemGroupJSON, 0, len(im.m))
	for _, item := range im.Items() {
		pulls := im.Pulls(item)
		groups = append(groups, itemGroupJSON{
			Item:  item,
			Count: len(pulls),
			Pulls: pulls,
		})
	}
	return json.Marshal(groups)
}
