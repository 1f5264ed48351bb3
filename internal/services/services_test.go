package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/auth"
	config "task-tracker.com/task-tracker/internal/configs"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/filters"
	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/query"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// memStore evaluates predicates in memory and records every Count call.
type memStore[T query.Record] struct {
	mu      sync.Mutex
	records []T
	counts  []query.Predicate
	err     error
}

func (m *memStore[T]) Count(ctx context.Context, where query.Predicate) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = append(m.counts, where)
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, r := range m.records {
		if query.Match(where, r) {
			n++
		}
	}
	return n, nil
}

func (m *memStore[T]) Find(ctx context.Context, where query.Predicate, opts query.FindOptions) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []T
	for _, r := range m.records {
		if query.Match(where, r) {
			out = append(out, r)
		}
	}
	if opts.Limit > 0 {
		if opts.Offset >= len(out) {
			return nil, nil
		}
		end := min(opts.Offset+opts.Limit, len(out))
		out = out[opts.Offset:end]
	}
	return out, nil
}

func (m *memStore[T]) countCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.counts)
}

// memTaskStore serves reads from memory; the listing never writes.
type memTaskStore struct {
	*memStore[model.Task]
}

var errReadOnly = errors.New("read-only store")

func (memTaskStore) Create(context.Context, *model.Task) error { return errReadOnly }
func (memTaskStore) CreateMany(context.Context, []model.Task) error { return errReadOnly }
func (memTaskStore) Update(context.Context, *model.Task) error { return errReadOnly }
func (memTaskStore) Delete(context.Context, string, string) error { return errReadOnly }
func (memTaskStore) FindOwned(context.Context, string, string) (*model.Task, error) {
	return nil, gorm.ErrRecordNotFound
}

func ownedTasks(n int, done bool) []model.Task {
	tasks := make([]model.Task, n)
	for i := range tasks {
		tasks[i] = model.Task{
			ID:       fmt.Sprintf("t-%d-%v", i, done),
			OwnerID:  "owner-1",
			Name:     fmt.Sprintf("Task %d", i),
			DateFrom: "2024-01-01",
			IsDone:   done,
		}
	}
	return tasks
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := config.OpenDatabase(dsn)
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

type testServices struct {
	tasks *TaskService
	users *UserService
	repo  *repository.TaskRepository
	owner *model.User
}

func setupServices(t *testing.T) testServices {
	t.Helper()
	db := setupTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)

	users := NewUserService(userRepo, auth.NewPasswordManagerWithCost(4), discardLogger())
	tasks := NewTaskService(taskRepo, userRepo, NewImageStore(t.TempDir()), discardLogger())

	owner, err := users.Register(context.Background(), Registration{
		Name: "Owner", Email: "owner@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register owner: %v", err)
	}
	return testServices{tasks: tasks, users: users, repo: taskRepo, owner: owner}
}

func TestValidateLimit(t *testing.T) {
	cases := map[string]int{
		"999": DefaultLimit,
		"20":  20,
		"5":   5,
		"":    DefaultLimit,
		"abc": DefaultLimit,
		"-10": DefaultLimit,
		"50":  50,
	}
	for raw, want := range cases {
		if got := ValidateLimit(raw); got != want {
			t.Errorf("ValidateLimit(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestValidatePage(t *testing.T) {
	cases := []struct {
		raw   string
		pages int
		want  int
	}{
		{"5", 1, 1},
		{"2", 3, 2},
		{"", 3, 1},
		{"x", 3, 1},
		{"0", 3, 1},
		{"-2", 3, 1},
		{"4", 0, 4},
	}
	for _, tc := range cases {
		if got := ValidatePage(tc.raw, tc.pages); got != tc.want {
			t.Errorf("ValidatePage(%q, %d) = %d, want %d", tc.raw, tc.pages, got, tc.want)
		}
	}
}

func TestPaginate_ResetsStalePage(t *testing.T) {
	store := &memStore[model.Task]{records: ownedTasks(3, false)}

	tasks, pagination, err := Paginate[model.Task](context.Background(), store, query.And{}, PageRequest{Page: "5", Limit: "10"})
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}

	want := Pagination{Page: 1, PagesCount: 1, ResultsCount: 3, Limit: 10}
	if pagination != want {
		t.Errorf("pagination = %+v, want %+v", pagination, want)
	}
	if len(tasks) != 3 {
		t.Errorf("expected 3 tasks on the reset page, got %d", len(tasks))
	}
}

func TestPaginate_ClampsLimit(t *testing.T) {
	store := &memStore[model.Task]{records: ownedTasks(45, false)}
	ctx := context.Background()

	tasks, pagination, err := Paginate[model.Task](ctx, store, nil, PageRequest{Limit: "999"})
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if pagination.Limit != 10 || len(tasks) != 10 || pagination.PagesCount != 5 {
		t.Errorf("limit=999: got limit %d, %d tasks, %d pages", pagination.Limit, len(tasks), pagination.PagesCount)
	}

	tasks, pagination, err = Paginate[model.Task](ctx, store, nil, PageRequest{Limit: "20", Page: "3"})
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if pagination.Limit != 20 || pagination.Page != 3 || len(tasks) != 5 {
		t.Errorf("limit=20 page=3: got limit %d page %d with %d tasks", pagination.Limit, pagination.Page, len(tasks))
	}
}

func TestPaginate_AllSkipsPaging(t *testing.T) {
	records := append(ownedTasks(57, true), model.Task{ID: "other", OwnerID: "owner-2", Name: "Foreign", DateFrom: "2024-01-01"})
	store := &memStore[model.Task]{records: records}

	where, err := filters.BuildTaskPredicate(filters.Params{Done: filters.FlagOn}, "owner-1")
	if err != nil {
		t.Fatal(err)
	}

	tasks, pagination, err := Paginate[model.Task](context.Background(), store, where, PageRequest{Limit: "10", All: true})
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if len(tasks) != 57 {
		t.Errorf("expected all 57 tasks, got %d", len(tasks))
	}
	if pagination.ResultsCount != 57 {
		t.Errorf("expected resultsCount 57, got %d", pagination.ResultsCount)
	}
}

func TestPaginate_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection refused")
	store := &memStore[model.Task]{err: boom}

	_, _, err := Paginate[model.Task](context.Background(), store, nil, PageRequest{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestTaskStatistics_PinnedStatusUsesOneCount(t *testing.T) {
	store := &memStore[model.Task]{records: append(ownedTasks(7, true), ownedTasks(4, false)...)}

	where, err := filters.BuildTaskPredicate(filters.Params{Done: filters.FlagOn}, "owner-1")
	if err != nil {
		t.Fatal(err)
	}

	stats, err := TaskStatistics(context.Background(), store, where)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats != (Statistics{TodoCount: 0, DoneCount: 7}) {
		t.Errorf("stats = %+v, want {0 7}", stats)
	}
	if calls := store.countCalls(); calls != 1 {
		t.Errorf("expected a single count, got %d", calls)
	}
}

func TestTaskStatisticsFromTotal_SkipsCounting(t *testing.T) {
	done, _ := filters.BuildTaskPredicate(filters.Params{Done: filters.FlagOn}, "owner-1")
	stats, ok := TaskStatisticsFromTotal(done, 7)
	if !ok || stats != (Statistics{DoneCount: 7}) {
		t.Errorf("done pinned: got %+v, %v", stats, ok)
	}

	todo, _ := filters.BuildTaskPredicate(filters.Params{Todo: filters.FlagOn}, "owner-1")
	stats, ok = TaskStatisticsFromTotal(todo, 4)
	if !ok || stats != (Statistics{TodoCount: 4}) {
		t.Errorf("todo pinned: got %+v, %v", stats, ok)
	}

	all, _ := filters.BuildTaskPredicate(filters.Params{}, "owner-1")
	if _, ok := TaskStatisticsFromTotal(all, 11); ok {
		t.Error("an unpinned predicate cannot be derived from its total")
	}
}

func TestTaskService_ListPinnedStatusReusesResultsCount(t *testing.T) {
	store := &memStore[model.Task]{records: append(ownedTasks(7, true), ownedTasks(4, false)...)}
	s := NewTaskService(memTaskStore{store}, nil, nil, discardLogger())

	list, err := s.List(context.Background(), "owner-1", filters.Params{Done: filters.FlagOn, Limit: "5"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Pagination.ResultsCount != 7 || list.Statistics != (Statistics{DoneCount: 7}) {
		t.Errorf("pagination = %+v, statistics = %+v", list.Pagination, list.Statistics)
	}
	if calls := store.countCalls(); calls != 1 {
		t.Errorf("expected only the paginator's count, got %d counts", calls)
	}
}

func TestTaskService_ListUnpinnedCountsEachStatus(t *testing.T) {
	store := &memStore[model.Task]{records: append(ownedTasks(7, true), ownedTasks(4, false)...)}
	s := NewTaskService(memTaskStore{store}, nil, nil, discardLogger())

	list, err := s.List(context.Background(), "owner-1", filters.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Pagination.ResultsCount != 11 || list.Statistics != (Statistics{TodoCount: 4, DoneCount: 7}) {
		t.Errorf("pagination = %+v, statistics = %+v", list.Pagination, list.Statistics)
	}
	if calls := store.countCalls(); calls != 3 {
		t.Errorf("expected the paginator's count plus two status counts, got %d", calls)
	}
}

func TestTaskStatistics_PinnedTodo(t *testing.T) {
	store := &memStore[model.Task]{records: append(ownedTasks(7, true), ownedTasks(4, false)...)}

	where, _ := filters.BuildTaskPredicate(filters.Params{Todo: filters.FlagOn}, "owner-1")
	stats, err := TaskStatistics(context.Background(), store, where)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats != (Statistics{TodoCount: 4, DoneCount: 0}) {
		t.Errorf("stats = %+v, want {4 0}", stats)
	}
}

func TestTaskStatistics_SplitsUnpinnedSet(t *testing.T) {
	store := &memStore[model.Task]{records: append(ownedTasks(7, true), ownedTasks(4, false)...)}

	where, _ := filters.BuildTaskPredicate(filters.Params{}, "owner-1")
	stats, err := TaskStatistics(context.Background(), store, where)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats != (Statistics{TodoCount: 4, DoneCount: 7}) {
		t.Errorf("stats = %+v, want {4 7}", stats)
	}
	if !stats.Show() {
		t.Error("expected statistics to be shown")
	}
	if calls := store.countCalls(); calls != 2 {
		t.Errorf("expected two counts, got %d", calls)
	}

	// The shared predicate must not pick up either status constraint.
	if _, pinned := query.Pinned(where, model.TaskFieldIsDone); pinned {
		t.Error("statistics mutated the caller's predicate")
	}
}

func TestTaskStatistics_EmptySetIsHidden(t *testing.T) {
	store := &memStore[model.Task]{}
	stats, err := TaskStatistics(context.Background(), store, query.And{})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Show() {
		t.Error("expected no statistics panel for an empty set")
	}
}

func TestTaskService_ListAgainstDatabase(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := s.tasks.Create(ctx, s.owner.ID, TaskInput{
			Name:     fmt.Sprintf("Report %02d", i),
			DateFrom: fmt.Sprintf("2024-01-%02d", i+1),
			IsDone:   ptrBool(i%3 == 0),
		})
		if err != nil {
			t.Fatalf("create task: %v", err)
		}
	}
	if _, err := s.tasks.Create(ctx, s.owner.ID, TaskInput{Name: "Meeting", DateFrom: "2024-01-01"}); err != nil {
		t.Fatal(err)
	}

	list, err := s.tasks.List(ctx, s.owner.ID, filters.Params{Q: "report", Limit: "5", Page: "3", Sort: "name|desc"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if list.Pagination != (Pagination{Page: 3, PagesCount: 3, ResultsCount: 12, Limit: 5}) {
		t.Errorf("pagination = %+v", list.Pagination)
	}
	if len(list.Tasks) != 2 {
		t.Fatalf("expected 2 tasks on the last page, got %d", len(list.Tasks))
	}
	if list.Tasks[0].Name != "Report 01" || list.Tasks[1].Name != "Report 00" {
		t.Errorf("unexpected order on last page: %q, %q", list.Tasks[0].Name, list.Tasks[1].Name)
	}
	if list.Statistics != (Statistics{TodoCount: 8, DoneCount: 4}) {
		t.Errorf("statistics = %+v", list.Statistics)
	}
}

func TestTaskService_ExportReturnsEveryMatch(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	if _, err := s.tasks.GenerateSamples(ctx, s.owner.ID); err != nil {
		t.Fatalf("generate samples: %v", err)
	}

	all, err := s.tasks.ExportAll(ctx, s.owner.ID)
	if err != nil {
		t.Fatalf("export all: %v", err)
	}
	if len(all) != len(sampleTasks) {
		t.Errorf("expected %d tasks, got %d", len(sampleTasks), len(all))
	}

	done, err := s.tasks.Export(ctx, s.owner.ID, filters.Params{Done: filters.FlagOn, Limit: "5"})
	if err != nil {
		t.Fatalf("export done: %v", err)
	}
	wantDone := 0
	for _, st := range sampleTasks {
		if st.isDone {
			wantDone++
		}
	}
	if len(done) != wantDone {
		t.Errorf("expected %d done tasks, got %d", wantDone, len(done))
	}
}

func TestTaskService_GenerateSamplesOnlyOnce(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	n, err := s.tasks.GenerateSamples(ctx, s.owner.ID)
	if err != nil {
		t.Fatalf("generate samples: %v", err)
	}
	if n != len(sampleTasks) {
		t.Errorf("expected %d samples, got %d", len(sampleTasks), n)
	}

	user, err := s.users.Get(ctx, s.owner.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !user.HasGeneratedSampleTasks {
		t.Error("expected user to be marked as having sample tasks")
	}

	if _, err := s.tasks.GenerateSamples(ctx, s.owner.ID); !errors.Is(err, apperrors.ErrSampleTasksExist) {
		t.Errorf("expected ErrSampleTasksExist, got %v", err)
	}
}

func TestTaskService_OtherOwnersTasksAreNotFound(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	task, err := s.tasks.Create(ctx, s.owner.ID, TaskInput{Name: "Private", DateFrom: "2024-01-01"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.tasks.Get(ctx, task.ID, "someone-else"); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("get: expected ErrTaskNotFound, got %v", err)
	}
	if _, err := s.tasks.Toggle(ctx, task.ID, "someone-else"); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("toggle: expected ErrTaskNotFound, got %v", err)
	}
	if err := s.tasks.Delete(ctx, task.ID, "someone-else"); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("delete: expected ErrTaskNotFound, got %v", err)
	}
	if _, err := s.tasks.Get(ctx, "", s.owner.ID); !errors.Is(err, apperrors.ErrTaskIDRequired) {
		t.Errorf("expected ErrTaskIDRequired, got %v", err)
	}
}

func TestTaskService_UpdateAndToggle(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	task, err := s.tasks.Create(ctx, s.owner.ID, TaskInput{Name: "  Draft  ", DateFrom: "2024-01-01", DateTo: "2024-01-05"})
	if err != nil {
		t.Fatal(err)
	}
	if task.Name != "Draft" || task.DateTo == nil || *task.DateTo != "2024-01-05" {
		t.Fatalf("unexpected created task: %+v", task)
	}

	updated, err := s.tasks.Update(ctx, task.ID, s.owner.ID, TaskInput{Name: "Final", DateFrom: "2024-02-01"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Final" || updated.DateTo != nil {
		t.Errorf("unexpected updated task: %+v", updated)
	}

	toggled, err := s.tasks.Toggle(ctx, task.ID, s.owner.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.IsDone {
		t.Error("expected task to be done after toggle")
	}

	fetched, err := s.tasks.Get(ctx, task.ID, s.owner.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !fetched.IsDone || fetched.Name != "Final" || fetched.DateTo != nil {
		t.Errorf("changes were not persisted: %+v", fetched)
	}
}

func TestTaskService_DeleteImageRemovesFile(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()
	repo := repository.NewTaskRepository(db)
	tasks := NewTaskService(repo, repository.NewUserRepository(db), NewImageStore(dir), discardLogger())
	ctx := context.Background()

	image := "1700000000000-photo.png"
	if err := os.WriteFile(filepath.Join(dir, image), []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}
	task := &model.Task{OwnerID: "owner-1", Name: "With image", DateFrom: "2024-01-01", Image: &image}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatal(err)
	}

	updated, err := tasks.DeleteImage(ctx, task.ID, "owner-1")
	if err != nil {
		t.Fatalf("delete image: %v", err)
	}
	if updated.Image != nil {
		t.Error("expected image reference to be cleared")
	}
	if _, err := os.Stat(filepath.Join(dir, image)); !os.IsNotExist(err) {
		t.Errorf("expected image file to be removed, stat err = %v", err)
	}

	// Already detached: nothing to do.
	if _, err := tasks.DeleteImage(ctx, task.ID, "owner-1"); err != nil {
		t.Errorf("second delete image: %v", err)
	}
}

func TestImageStore_RemoveMissingFile(t *testing.T) {
	store := NewImageStore(t.TempDir())
	if err := store.Remove("missing.png"); err != nil {
		t.Errorf("expected no error for a missing file, got %v", err)
	}
	if err := store.Remove(""); err != nil {
		t.Errorf("expected no error for an empty name, got %v", err)
	}
}

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	if _, err := s.users.Register(ctx, Registration{Name: "Copy", Email: "OWNER@example.com", Password: "x"}); !errors.Is(err, apperrors.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}

	user, err := s.users.Authenticate(ctx, "Owner@Example.com", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != s.owner.ID {
		t.Errorf("authenticated %s, want %s", user.ID, s.owner.ID)
	}

	if _, err := s.users.Authenticate(ctx, "owner@example.com", "wrong"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.users.Authenticate(ctx, "nobody@example.com", "secret123"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_ListWithStatistics(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	created, err := s.users.Seed(ctx, DemoAccounts())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if created != len(DemoAccounts()) {
		t.Errorf("expected %d seeded users, got %d", len(DemoAccounts()), created)
	}
	if again, err := s.users.Seed(ctx, DemoAccounts()); err != nil || again != 0 {
		t.Errorf("reseed: created %d, err %v", again, err)
	}

	list, err := s.users.List(ctx, filters.Params{Sort: "name|asc"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Users) != len(DemoAccounts())+1 {
		t.Errorf("expected %d users, got %d", len(DemoAccounts())+1, len(list.Users))
	}
	if list.Users[0].Name != "Administrator" {
		t.Errorf("expected users sorted by name, first is %q", list.Users[0].Name)
	}
	if list.Statistics != (UserStatistics{AdminCount: 2, RegularUserCount: 4}) {
		t.Errorf("statistics = %+v", list.Statistics)
	}

	filtered, err := s.users.List(ctx, filters.Params{Q: "ADMIN"})
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered.Users) != 2 || filtered.Statistics != (UserStatistics{AdminCount: 2}) {
		t.Errorf("unexpected filtered listing: %d users, %+v", len(filtered.Users), filtered.Statistics)
	}
}

func TestWriteTasksCSV(t *testing.T) {
	dateTo := "2024-01-05"
	tasks := []model.Task{
		{Name: "Plan, then build", DateFrom: "2024-01-01", DateTo: &dateTo, IsDone: true},
		{Name: "Open ended", DateFrom: "2024-02-01"},
	}

	var buf bytes.Buffer
	if err := WriteTasksCSV(&buf, tasks); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	want := "\ufeffName,Date from,Date to,Status\n" +
		"\"Plan, then build\",2024-01-01,2024-01-05,Done\n" +
		"Open ended,2024-02-01,,To do\n"
	if buf.String() != want {
		t.Errorf("csv =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	cases := []struct {
		q        string
		filtered bool
		want     string
	}{
		{"", false, "tasks-1700000000000.csv"},
		{"", true, "tasks-filtered-1700000000000.csv"},
		{"report", true, "tasks-filtered-report-1700000000000.csv"},
		{"../a b;c", true, "tasks-filtered-a_b_c-1700000000000.csv"},
	}
	for _, tc := range cases {
		if got := ExportFilename(tc.q, tc.filtered, now); got != tc.want {
			t.Errorf("ExportFilename(%q, %v) = %q, want %q", tc.q, tc.filtered, got, tc.want)
		}
	}
}

func ptrBool(b bool) *bool { return &b }
