package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/query"
)

var userColumns = columns{
	model.UserFieldName:      "name",
	model.UserFieldEmail:     "email",
	model.UserFieldIsAdmin:   "is_admin",
	model.UserFieldCreatedAt: "created_at",
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) MarkSampleTasksGenerated(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"has_generated_sample_tasks": true,
			"updated_at":                 time.Now().UTC(),
		}).Error
}

func (r *UserRepository) Find(ctx context.Context, where query.Predicate, opts query.FindOptions) ([]model.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.Find", trace.WithAttributes(
		attribute.String("query.where", query.Describe(where)),
	))
	defer span.End()

	db, err := userColumns.apply(r.db.WithContext(ctx).Model(&model.User{}), where, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	users := []model.User{}
	if err := db.Find(&users).Error; err != nil {
		span.RecordError(err)
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context, where query.Predicate) (int64, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.Count", trace.WithAttributes(
		attribute.String("query.where", query.Describe(where)),
	))
	defer span.End()

	db, err := userColumns.where(r.db.WithContext(ctx).Model(&model.User{}), where)
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
