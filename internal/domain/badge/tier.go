package badge

import "golang.org/x/exp/slices"

// Tier is one configurable threshold of an achievement category.
type Tier struct {
	Level       string
	Threshold   int
	Description string
}

func sortTiers(tiers []Tier) []Tier {
	sorted := append([]Tier{}, tiers...)
	slices.SortFunc(sorted, func(a, b Tier) bool {
		return a.Threshold < b.Threshold
	})

	return sorted
}

// scanTiers returns an achievement for every tier at or below value. A value
// of 35 against tiers of 7/30/100 yields both the 7 and the 30 medal, which
// mirrors milestones reached rather than the current tier alone.
func scanTiers(category string, tiers []Tier, value int) []Achievement {
	var achievements []Achievement
	for _, tier := range tiers {
		if value < tier.Threshold {
			break
		}

		achievements = append(achievements, Achievement{
			Category:    category,
			Level:       tier.Level,
			Threshold:   tier.Threshold,
			Description: tier.Description,
		})
	}

	return achievements
}
