package model

// Status is a workflow step for a task. The set is fixed; rows are seeded
// with the ids below and never edited by users.
type Status struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

// Priority is a task's urgency level. Same fixed-set treatment as Status.
type Priority struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

const (
	StatusTodo  = 1
	StatusDoing = 2
	StatusDone  = 3

	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Statuses returns the canonical status set in id order.
func Statuses() []Status {
	return []Status{
		{ID: StatusTodo, Name: "Todo"},
		{ID: StatusDoing, Name: "Doing"},
		{ID: StatusDone, Name: "Done"},
	}
}

// Priorities returns the canonical priority set in id order.
func Priorities() []Priority {
	return []Priority{
		{ID: PriorityLow, Name: "Low"},
		{ID: PriorityMedium, Name: "Medium"},
		{ID: PriorityHigh, Name: "High"},
	}
}

// ValidStatusID reports membership in the known status set. There is no
// ordering guard: any known id is accepted at any time.
func ValidStatusID(id int) bool {
	return id >= StatusTodo && id <= StatusDone
}

// ValidPriorityID reports membership in the known priority set.
func ValidPriorityID(id int) bool {
	return id >= PriorityLow && id <= PriorityHigh
}
