package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidFilter   = errors.New("model: invalid filter")
	ErrInvalidDate     = errors.New("model: invalid task date")
	ErrInvalidTime     = errors.New("model: invalid task time")
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the selectable priorities in display order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Next returns the priority after p, wrapping around.
func (p Priority) Next() Priority {
	for i, candidate := range Priorities {
		if candidate == p {
			return Priorities[(i+1)%len(Priorities)]
		}
	}
	return PriorityHigh
}

func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
	return p, nil
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

func ParseFilter(raw string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
	return f, nil
}

// Task is the persisted shape of a single to-do item. Date and Time are kept
// as the raw strings the input widgets produce; empty means unset.
type Task struct {
	ID        int64    `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
}

func (t Task) HasDate() bool { return t.Date != "" }

func (t Task) HasTime() bool { return t.Time != "" }

func (t Task) Validate() error {
	if t.ID <= 0 {
		return errors.New("model: task id must be positive")
	}
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("model: task text is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if err := ValidateDate(t.Date); err != nil {
		return err
	}
	return ValidateTime(t.Time)
}

func ValidateDate(v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, v); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, v)
	}
	return nil
}

func ValidateTime(v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(TimeLayout, v); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, v)
	}
	return nil
}

// Collection is ordered newest first.
type Collection []Task

func (c Collection) Index(id int64) int {
	for i, t := range c {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (c Collection) Clone() Collection {
	if c == nil {
		return Collection{}
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}
