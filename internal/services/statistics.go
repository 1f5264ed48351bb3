package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/query"
)

// Partition splits the matches of a predicate on a boolean field.
type Partition struct {
	True  int64
	False int64
}

// PinnedPartition puts total, the number of matches of where, on the side
// of field that where pins. ok is false when where does not pin field to a
// bool.
func PinnedPartition(where query.Predicate, field string, total int64) (Partition, bool) {
	value, ok := query.Pinned(where, field)
	if !ok {
		return Partition{}, false
	}
	pinned, ok := value.(bool)
	if !ok {
		return Partition{}, false
	}
	if pinned {
		return Partition{True: total}, true
	}
	return Partition{False: total}, true
}

func pinsBool(where query.Predicate, field string) bool {
	_, ok := PinnedPartition(where, field, 0)
	return ok
}

// CountPartition counts the matches of where for each value of field. When
// where already pins field, a single count fills the pinned side.
func CountPartition(ctx context.Context, counter Counter, where query.Predicate, field string) (Partition, error) {
	if pinsBool(where, field) {
		total, err := counter.Count(ctx, where)
		if err != nil {
			return Partition{}, fmt.Errorf("count pinned %s: %w", field, err)
		}
		p, _ := PinnedPartition(where, field, total)
		return p, nil
	}

	var p Partition
	var g errgroup.Group
	g.Go(func() error {
		n, err := counter.Count(ctx, query.Where(where, query.Eq{Field: field, Value: false}))
		if err != nil {
			return fmt.Errorf("count %s=false: %w", field, err)
		}
		p.False = n
		return nil
	})
	g.Go(func() error {
		n, err := counter.Count(ctx, query.Where(where, query.Eq{Field: field, Value: true}))
		if err != nil {
			return fmt.Errorf("count %s=true: %w", field, err)
		}
		p.True = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return Partition{}, err
	}
	return p, nil
}

type Statistics struct {
	TodoCount int64 `json:"todoCount"`
	DoneCount int64 `json:"doneCount"`
}

// Show reports whether there is anything to summarise.
func (s Statistics) Show() bool {
	return s.TodoCount+s.DoneCount > 0
}

// TaskStatistics counts open and done tasks over the whole filtered set.
func TaskStatistics(ctx context.Context, counter Counter, where query.Predicate) (Statistics, error) {
	p, err := CountPartition(ctx, counter, where, model.TaskFieldIsDone)
	if err != nil {
		return Statistics{}, err
	}
	return Statistics{TodoCount: p.False, DoneCount: p.True}, nil
}

// TaskStatisticsFromTotal derives the statistics from the number of matches
// of where, without counting, when where pins the done flag.
func TaskStatisticsFromTotal(where query.Predicate, total int64) (Statistics, bool) {
	p, ok := PinnedPartition(where, model.TaskFieldIsDone, total)
	if !ok {
		return Statistics{}, false
	}
	return Statistics{TodoCount: p.False, DoneCount: p.True}, true
}

type UserStatistics struct {
	AdminCount       int64 `json:"adminCount"`
	RegularUserCount int64 `json:"regularUserCount"`
}

func (s UserStatistics) Show() bool {
	return s.AdminCount+s.RegularUserCount > 0
}

func userStatistics(ctx context.Context, counter Counter, where query.Predicate) (UserStatistics, error) {
	p, err := CountPartition(ctx, counter, where, model.UserFieldIsAdmin)
	if err != nil {
		return UserStatistics{}, err
	}
	return UserStatistics{AdminCount: p.True, RegularUserCount: p.False}, nil
}
