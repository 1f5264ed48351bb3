package services

import (
	"context"

	model "task-tracker.com/task-tracker/internal/models"
)

// TaskStore is the persistence the task service needs. Every lookup that
// takes an ownerID must ignore tasks of other owners.
type TaskStore interface {
	Store[model.Task]
	Create(ctx context.Context, task *model.Task) error
	CreateMany(ctx context.Context, tasks []model.Task) error
	FindOwned(ctx context.Context, id, ownerID string) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id, ownerID string) error
}

type UserStore interface {
	Store[model.User]
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	MarkSampleTasksGenerated(ctx context.Context, id string) error
}
