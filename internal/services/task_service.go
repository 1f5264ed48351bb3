package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/filters"
	model "task-tracker.com/task-tracker/internal/models"
)

type TaskService struct {
	repo   TaskStore
	users  UserStore
	images *ImageStore
	logger *slog.Logger
}

func NewTaskService(repo TaskStore, users UserStore, images *ImageStore, logger *slog.Logger) *TaskService {
	return &TaskService{
		repo:   repo,
		users:  users,
		images: images,
		logger: logger,
	}
}

// TaskInput is an already validated create or update payload.
type TaskInput struct {
	Name     string
	DateFrom string
	DateTo   string
	IsDone   *bool
}

type TaskList struct {
	Tasks      []model.Task `json:"tasks"`
	Pagination Pagination   `json:"pagination"`
	Statistics Statistics   `json:"statistics"`
}

// List returns one page of the owner's tasks narrowed by p, together with
// statistics over every match. When the status is pinned the statistics
// come from the page's result count. Otherwise the page and the two status
// counts are read concurrently; any failed read fails the whole listing.
func (s *TaskService) List(ctx context.Context, ownerID string, p filters.Params) (*TaskList, error) {
	where, err := filters.BuildTaskPredicate(p, ownerID)
	if err != nil {
		return nil, err
	}
	if p.StatusConflict() {
		s.logger.WarnContext(ctx, "both status filters set, showing done tasks only",
			slog.String("owner_id", ownerID))
	}

	req := PageRequest{
		Sort:  p.Sort,
		Page:  p.Page,
		Limit: p.Limit,
	}

	if pinsBool(where, model.TaskFieldIsDone) {
		tasks, pagination, err := Paginate[model.Task](ctx, s.repo, where, req)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		stats, _ := TaskStatisticsFromTotal(where, pagination.ResultsCount)
		return &TaskList{Tasks: tasks, Pagination: pagination, Statistics: stats}, nil
	}

	var (
		list TaskList
		g    errgroup.Group
	)
	g.Go(func() error {
		tasks, pagination, err := Paginate[model.Task](ctx, s.repo, where, req)
		if err != nil {
			return err
		}
		list.Tasks, list.Pagination = tasks, pagination
		return nil
	})
	g.Go(func() error {
		stats, err := TaskStatistics(ctx, s.repo, where)
		if err != nil {
			return err
		}
		list.Statistics = stats
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &list, nil
}

// Export returns every task of the owner matching p, in the requested order.
func (s *TaskService) Export(ctx context.Context, ownerID string, p filters.Params) ([]model.Task, error) {
	where, err := filters.BuildTaskPredicate(p, ownerID)
	if err != nil {
		return nil, err
	}
	tasks, _, err := Paginate[model.Task](ctx, s.repo, where, PageRequest{Sort: p.Sort, All: true})
	if err != nil {
		return nil, fmt.Errorf("export tasks: %w", err)
	}
	return tasks, nil
}

// ExportAll returns every task of the owner, ignoring any filter.
func (s *TaskService) ExportAll(ctx context.Context, ownerID string) ([]model.Task, error) {
	return s.Export(ctx, ownerID, filters.Params{})
}

func (s *TaskService) Create(ctx context.Context, ownerID string, in TaskInput) (*model.Task, error) {
	task := &model.Task{
		OwnerID:  ownerID,
		Name:     strings.TrimSpace(in.Name),
		DateFrom: in.DateFrom,
		DateTo:   optionalDate(in.DateTo),
	}
	if in.IsDone != nil {
		task.IsDone = *in.IsDone
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id, ownerID string) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}
	task, err := s.repo.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, notFound(err)
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id, ownerID string, in TaskInput) (*model.Task, error) {
	task, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	task.Name = strings.TrimSpace(in.Name)
	task.DateFrom = in.DateFrom
	task.DateTo = optionalDate(in.DateTo)
	if in.IsDone != nil {
		task.IsDone = *in.IsDone
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, notFound(err)
	}
	return task, nil
}

// Toggle flips the done flag of a task.
func (s *TaskService) Toggle(ctx context.Context, id, ownerID string) (*model.Task, error) {
	task, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	task.IsDone = !task.IsDone
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, notFound(err)
	}
	return task, nil
}

// Delete removes a task and its attachment. A failure to remove the file is
// logged and does not bring the task back.
func (s *TaskService) Delete(ctx context.Context, id, ownerID string) error {
	task, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, task.ID, ownerID); err != nil {
		return notFound(err)
	}

	if task.Image != nil {
		if err := s.images.Remove(*task.Image); err != nil {
			s.logger.ErrorContext(ctx, "failed to remove task image",
				slog.String("task_id", task.ID), slog.Any("error", err))
		}
	}
	return nil
}

// DeleteImage detaches the image of a task and removes the stored file.
func (s *TaskService) DeleteImage(ctx context.Context, id, ownerID string) (*model.Task, error) {
	task, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if task.Image == nil {
		return task, nil
	}

	if err := s.images.Remove(*task.Image); err != nil {
		return nil, err
	}
	task.Image = nil
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, notFound(err)
	}
	return task, nil
}

// GenerateSamples fills an empty task list with demo tasks.
func (s *TaskService) GenerateSamples(ctx context.Context, ownerID string) (int, error) {
	where, err := filters.BuildTaskPredicate(filters.Params{}, ownerID)
	if err != nil {
		return 0, err
	}
	existing, err := s.repo.Count(ctx, where)
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	if existing > 0 {
		return 0, apperrors.ErrSampleTasksExist
	}

	tasks := SampleTasks(ownerID)
	if err := s.repo.CreateMany(ctx, tasks); err != nil {
		return 0, fmt.Errorf("create sample tasks: %w", err)
	}
	if err := s.users.MarkSampleTasksGenerated(ctx, ownerID); err != nil {
		return 0, fmt.Errorf("mark sample tasks: %w", err)
	}

	s.logger.InfoContext(ctx, "sample tasks generated",
		slog.String("owner_id", ownerID), slog.Int("count", len(tasks)))
	return len(tasks), nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTaskNotFound
	}
	return err
}

func optionalDate(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
