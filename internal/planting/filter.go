package planting

import (
	"strings"

	"github.com/i474232898/garden-planner/internal/common"
)

// CropColumn is the calendar column holding the crop name.
const CropColumn = "Crop"

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Categories maps a category to the crop names it covers.
var Categories = map[string][]string{
	"vegetables": {"Tomato", "Pepper", "Cucumber", "Lettuce", "Carrot", "Broccoli", "Cabbage"},
	"herbs":      {"Basil", "Parsley", "Mint", "Cilantro", "Thyme", "Rosemary", "Dill"},
	"fruits":     {"Strawberry", "Watermelon", "Cantaloupe", "Raspberry"},
}

// Filter selects records by crop name.
type Filter struct {
	// Search keeps records whose crop contains it, case-insensitive.
	Search string
	// Category is one of the Categories keys, CategoryAll or empty.
	Category string
}

func (f Filter) empty() bool {
	return f.Search == "" && (f.Category == "" || f.Category == CategoryAll)
}

// Apply returns the records matching f, preserving order.
func (f Filter) Apply(records []Record) []Record {
	if f.empty() {
		return records
	}

	var names []string
	if f.Category != "" && f.Category != CategoryAll {
		for _, n := range Categories[f.Category] {
			names = append(names, strings.ToLower(n))
		}
	}

	out := make([]Record, 0, len(records))
	for _, rec := range records {
		crop, _ := rec.Get(CropColumn)
		if !common.ContainsFold(crop, f.Search) {
			continue
		}
		if names != nil && !common.HasAny(strings.ToLower(crop), names...) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
