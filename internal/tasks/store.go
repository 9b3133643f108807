package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sandeepkv93/tasklite/internal/model"
	"github.com/sandeepkv93/tasklite/internal/storage"
)

// Draft carries the primitive values the input widgets emit for a new task.
type Draft struct {
	Text     string
	Priority model.Priority
	Date     string
	Time     string
}

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store owns the task collection. Every successful mutation is followed by a
// full write of the collection under storage.KeyTasks before it returns; a
// failed write leaves the in-memory collection untouched.
//
// A Store is not safe for concurrent use.
type Store struct {
	kv     storage.KV
	logger *zap.Logger
	now    func() time.Time
	tasks  model.Collection
	lastID int64
}

func NewStore(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		logger: zap.NewNop(),
		now:    time.Now,
		tasks:  model.Collection{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the stored collection. Missing or corrupt data starts an
// empty collection; only a failing store is reported.
func (s *Store) Initialize(ctx context.Context) error {
	s.tasks = model.Collection{}
	raw, err := s.kv.Get(ctx, storage.KeyTasks)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Info("no stored tasks, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	loaded, err := Decode(raw)
	if err != nil {
		s.logger.Warn("discarding stored tasks", zap.Error(err))
		return nil
	}
	s.tasks = loaded
	for _, t := range loaded {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	s.logger.Info("tasks loaded", zap.Int("count", len(loaded)))
	return nil
}

func (s *Store) Add(ctx context.Context, d Draft) (model.Collection, error) {
	text := strings.TrimSpace(d.Text)
	if text == "" {
		return s.Snapshot(), &ValidationError{Field: "text", Err: ErrEmptyText}
	}
	if !d.Priority.IsValid() {
		return s.Snapshot(), &ValidationError{Field: "priority", Err: fmt.Errorf("%w: %q", model.ErrInvalidPriority, d.Priority)}
	}
	date := strings.TrimSpace(d.Date)
	if err := model.ValidateDate(date); err != nil {
		return s.Snapshot(), &ValidationError{Field: "date", Err: err}
	}
	clock := strings.TrimSpace(d.Time)
	if err := model.ValidateTime(clock); err != nil {
		return s.Snapshot(), &ValidationError{Field: "time", Err: err}
	}

	task := model.Task{
		ID:       s.nextID(),
		Text:     text,
		Priority: d.Priority,
		Date:     date,
		Time:     clock,
	}
	next := make(model.Collection, 0, len(s.tasks)+1)
	next = append(next, task)
	next = append(next, s.tasks...)
	if err := s.commit(ctx, next); err != nil {
		return s.Snapshot(), err
	}
	s.logger.Debug("task added", zap.Int64("id", task.ID), zap.String("priority", string(task.Priority)))
	return s.Snapshot(), nil
}

func (s *Store) Toggle(ctx context.Context, id int64) (model.Collection, error) {
	idx := s.tasks.Index(id)
	if idx < 0 {
		return s.Snapshot(), fmt.Errorf("toggle %d: %w", id, ErrTaskNotFound)
	}
	next := s.tasks.Clone()
	next[idx].Completed = !next[idx].Completed
	if err := s.commit(ctx, next); err != nil {
		return s.Snapshot(), err
	}
	s.logger.Debug("task toggled", zap.Int64("id", id), zap.Bool("completed", next[idx].Completed))
	return s.Snapshot(), nil
}

// Remove deletes id if present. Removing an absent id is not an error.
func (s *Store) Remove(ctx context.Context, id int64) (model.Collection, error) {
	next := make(model.Collection, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	existed := len(next) < len(s.tasks)
	if err := s.commit(ctx, next); err != nil {
		return s.Snapshot(), err
	}
	s.logger.Debug("task removed", zap.Int64("id", id), zap.Bool("existed", existed))
	return s.Snapshot(), nil
}

// Snapshot returns a copy of the collection, newest first.
func (s *Store) Snapshot() model.Collection {
	return s.tasks.Clone()
}

func (s *Store) commit(ctx context.Context, next model.Collection) error {
	payload, err := Encode(next)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyTasks, payload); err != nil {
		s.logger.Error("persist tasks failed", zap.Error(err))
		return fmt.Errorf("persist tasks: %w", err)
	}
	s.tasks = next
	return nil
}

// nextID stamps creation time in milliseconds, moving past any id already
// issued when the clock has not advanced.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
