package model

import "time"

const (
	UserFieldName      = "name"
	UserFieldEmail     = "email"
	UserFieldIsAdmin   = "isAdmin"
	UserFieldCreatedAt = "createdAt"
)

type User struct {
	ID                      string    `gorm:"primaryKey;size:36" json:"id"`
	Name                    string    `gorm:"not null" json:"name"`
	Email                   string    `gorm:"uniqueIndex;not null" json:"email"`
	Password                string    `gorm:"not null" json:"-"`
	IsAdmin                 bool      `gorm:"not null" json:"isAdmin"`
	HasGeneratedSampleTasks bool      `gorm:"not null" json:"hasGeneratedSampleTasks"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

func (u User) FieldValue(field string) any {
	switch field {
	case UserFieldName:
		return u.Name
	case UserFieldEmail:
		return u.Email
	case UserFieldIsAdmin:
		return u.IsAdmin
	}
	return nil
}
