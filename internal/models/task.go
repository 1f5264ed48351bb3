package model

import "time"

// Field names used in predicates over tasks.
const (
	TaskFieldOwner    = "owner"
	TaskFieldName     = "name"
	TaskFieldDateFrom = "dateFrom"
	TaskFieldDateTo   = "dateTo"
	TaskFieldIsDone   = "isDone"
)

// DateLayout is the storage format of DateFrom and DateTo. Lexicographic and
// chronological order coincide for it.
const DateLayout = "2006-01-02"

type Task struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   string    `gorm:"size:36;not null;index" json:"owner"`
	Name      string    `gorm:"not null" json:"name"`
	DateFrom  string    `gorm:"size:10;not null" json:"dateFrom"`
	DateTo    *string   `gorm:"size:10" json:"dateTo"`
	IsDone    bool      `gorm:"not null" json:"isDone"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t Task) FieldValue(field string) any {
	switch field {
	case TaskFieldOwner:
		return t.OwnerID
	case TaskFieldName:
		return t.Name
	case TaskFieldDateFrom:
		return t.DateFrom
	case TaskFieldDateTo:
		if t.DateTo == nil {
			return nil
		}
		return *t.DateTo
	case TaskFieldIsDone:
		return t.IsDone
	}
	return nil
}
