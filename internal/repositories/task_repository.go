package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/query"
)

var tracer = otel.Tracer("task-tracker.com/task-tracker/internal/repositories")

var taskColumns = columns{
	model.TaskFieldOwner:    "owner_id",
	model.TaskFieldName:     "name",
	model.TaskFieldDateFrom: "date_from",
	model.TaskFieldDateTo:   "date_to",
	model.TaskFieldIsDone:   "is_done",
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) CreateMany(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
		}
		tasks[i].CreatedAt = now
		tasks[i].UpdatedAt = now
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

// FindOwned loads a task only when it belongs to ownerID.
func (r *TaskRepository) FindOwned(ctx context.Context, id, ownerID string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	task.UpdatedAt = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND owner_id = ?", task.ID, task.OwnerID).
		Updates(map[string]interface{}{
			"name":       task.Name,
			"date_from":  task.DateFrom,
			"date_to":    task.DateTo,
			"is_done":    task.IsDone,
			"image":      task.Image,
			"updated_at": task.UpdatedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepository) Find(ctx context.Context, where query.Predicate, opts query.FindOptions) ([]model.Task, error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.Find", trace.WithAttributes(
		attribute.String("query.where", query.Describe(where)),
		attribute.Int("query.offset", opts.Offset),
		attribute.Int("query.limit", opts.Limit),
	))
	defer span.End()

	db, err := taskColumns.apply(r.db.WithContext(ctx).Model(&model.Task{}), where, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	tasks := []model.Task{}
	if err := db.Find(&tasks).Error; err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("task.count", len(tasks)))
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, where query.Predicate) (int64, error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.Count", trace.WithAttributes(
		attribute.String("query.where", query.Describe(where)),
	))
	defer span.End()

	db, err := taskColumns.where(r.db.WithContext(ctx).Model(&model.Task{}), where)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	var n int64
	if err := db.Count(&n).Error; err != nil {
		span.RecordError(err)
		return 0, err
	}
	return n, nil
}
