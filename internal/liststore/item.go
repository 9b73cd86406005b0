package liststore

import "fmt"

// Priority is the urgency hint carried by an Item.
type Priority int

// Priority levels. The schema default is PriorityLow.
const (
	PriorityNone   Priority = 0
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// String returns the lowercase name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityNone:
		return "none"
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// ParsePriority converts a priority name to its Priority value.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "none":
		return PriorityNone, nil
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return PriorityNone, fmt.Errorf("invalid priority %q: must be one of none, low, medium, high", s)
	}
}

// Item is one row of the list store.
//
// RowID is assigned by the store on first insert and stable thereafter;
// it is ignored on Write. The pair (Author, MessageReference) is unique:
// writing a second item with the same pair updates the existing row.
type Item struct {
	RowID            int64    `json:"row_id"`
	Author           int64    `json:"author"`
	CreatedAt        int64    `json:"created_at"` // unix seconds
	UpdatedAt        int64    `json:"updated_at"` // unix seconds
	ClosedAt         int64    `json:"closed_at"`  // unix seconds, 0 = open
	MessageReference int64    `json:"message_reference"`
	Message          string   `json:"message"`
	Priority         Priority `json:"priority"`
}

// Closed reports whether the item has been closed.
func (it Item) Closed() bool {
	return it.ClosedAt > 0
}
