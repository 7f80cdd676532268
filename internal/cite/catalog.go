package cite

import (
	"sort"

	"github.com/matsen/citeline/internal/cache"
)

// Choice is one selectable bibliography entry: the citation key and
// its single-line display label.
type Choice struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Catalog projects a cache snapshot into the ordered choice list that
// feeds a selector. Choices are sorted by key so the list is stable
// across reloads. A nil or empty snapshot yields an empty list.
func Catalog(snap *cache.Snapshot) []Choice {
	if snap == nil || len(snap.Entries) == 0 {
		return nil
	}

	choices := make([]Choice, 0, len(snap.Entries))
	for key, entry := range snap.Entries {
		choices = append(choices, Choice{Key: key, Label: entry.Label()})
	}
	sort.Slice(choices, func(i, j int) bool { return choices[i].Key < choices[j].Key })
	return choices
}
