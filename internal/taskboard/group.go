package taskboard

import (
	"sort"
	"strings"

	"taskboard/internal/model"
)

// UncategorizedLabel names the synthetic bucket for tasks with no category.
const UncategorizedLabel = "Uncategorized"

// TaskGroup is one dashboard section: a category (nil for the uncategorized
// bucket) and its tasks in the order the caller supplied them.
type TaskGroup struct {
	Category *model.Category
	Label    string
	Tasks    []model.Task
}

// GroupByCategory arranges tasks into one group per owned category, sorted
// by name, with a final Uncategorized group when any task has no category.
// Owned categories appear even when empty; tasks keep their input order
// within each group. Tasks referencing a category not in categories land in
// the uncategorized bucket rather than being dropped.
func GroupByCategory(tasks []model.Task, categories []model.Category) []TaskGroup {
	groups := make([]TaskGroup, 0, len(categories)+1)
	index := make(map[uint]int, len(categories))

	sorted := make([]model.Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	for i := range sorted {
		category := sorted[i]
		index[category.ID] = len(groups)
		groups = append(groups, TaskGroup{Category: &category, Label: category.Name})
	}

	var uncategorized []model.Task
	for _, task := range tasks {
		if task.CategoryID != nil {
			if at, ok := index[*task.CategoryID]; ok {
				groups[at].Tasks = append(groups[at].Tasks, task)
				continue
			}
		}
		uncategorized = append(uncategorized, task)
	}

	if len(uncategorized) > 0 {
		groups = append(groups, TaskGroup{Label: UncategorizedLabel, Tasks: uncategorized})
	}
	return groups
}
