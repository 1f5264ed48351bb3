package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/auth"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/filters"
	model "task-tracker.com/task-tracker/internal/models"
)

type UserService struct {
	repo      UserStore
	passwords *auth.PasswordManager
	logger    *slog.Logger
}

func NewUserService(repo UserStore, passwords *auth.PasswordManager, logger *slog.Logger) *UserService {
	return &UserService{
		repo:      repo,
		passwords: passwords,
		logger:    logger,
	}
}

type Registration struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

type UserList struct {
	Users      []model.User   `json:"users"`
	Statistics UserStatistics `json:"statistics"`
}

func (s *UserService) Register(ctx context.Context, r Registration) (*model.User, error) {
	if _, err := s.repo.FindByEmail(ctx, r.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	hash, err := s.passwords.HashPassword(r.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     strings.TrimSpace(r.Name),
		Email:    r.Email,
		Password: hash,
		IsAdmin:  r.IsAdmin,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID))
	return user, nil
}

// Authenticate returns the user owning email when password matches. Unknown
// emails and wrong passwords are reported the same way.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if !s.passwords.VerifyPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

// List returns every user matching the name search in p, unpaginated, with
// admin and regular user counts.
func (s *UserService) List(ctx context.Context, p filters.Params) (*UserList, error) {
	where := filters.BuildUserPredicate(p)

	var (
		list UserList
		g    errgroup.Group
	)
	g.Go(func() error {
		users, _, err := Paginate[model.User](ctx, s.repo, where, PageRequest{Sort: p.Sort, All: true})
		if err != nil {
			return err
		}
		list.Users = users
		return nil
	})
	g.Go(func() error {
		stats, err := userStatistics(ctx, s.repo, where)
		if err != nil {
			return err
		}
		list.Statistics = stats
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &list, nil
}

// Seed registers each account that does not exist yet and reports how many
// were created.
func (s *UserService) Seed(ctx context.Context, accounts []Registration) (int, error) {
	created := 0
	for _, account := range accounts {
		_, err := s.Register(ctx, account)
		switch {
		case errors.Is(err, apperrors.ErrEmailTaken):
			s.logger.DebugContext(ctx, "seed user exists", slog.String("email", account.Email))
		case err != nil:
			return created, fmt.Errorf("seed %s: %w", account.Email, err)
		default:
			created++
		}
	}
	return created, nil
}

// DemoAccounts are the users the seed command creates.
func DemoAccounts() []Registration {
	return []Registration{
		{Name: "Administrator", Email: "admin@example.com", Password: "admin123", IsAdmin: true},
		{Name: "Support Admin", Email: "support@example.com", Password: "support123", IsAdmin: true},
		{Name: "Jan Kowalski", Email: "jan@example.com", Password: "password123"},
		{Name: "Anna Nowak", Email: "anna@example.com", Password: "password123"},
		{Name: "Piotr Wisniewski", Email: "piotr@example.com", Password: "password123"},
	}
}
