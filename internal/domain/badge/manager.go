package badge

import (
	"github.com/fitstride-lab/backend/internal/entity"
)

// Manager evaluates achievements across every registered scanner. The result
// is grouped by category in registration order, ascending by threshold
// within a category, so the list is stable for identical snapshots.
type Manager struct {
	// This field is only written at initialization. After that, it is
	// readonly.
	scanners []Scanner
}

func NewManager(scanners ...Scanner) *Manager {
	return &Manager{scanners: scanners}
}

// NewDefaultManager registers the scanners of the standard medal set: streak
// medals first, then workout-count medals.
func NewDefaultManager() *Manager {
	return NewManager(
		NewStreakScanner(DefaultStreakTiers),
		NewWorkoutScanner(DefaultWorkoutTiers),
	)
}

func (m *Manager) GetAllCategories() []string {
	categories := make([]string, 0, len(m.scanners))
	for _, s := range m.scanners {
		categories = append(categories, s.Category())
	}

	return categories
}

func (m *Manager) Evaluate(stat entity.UserStatistic) []Achievement {
	achievements := []Achievement{}
	for _, s := range m.scanners {
		achievements = append(achievements, s.Scan(stat)...)
	}

	return achievements
}
