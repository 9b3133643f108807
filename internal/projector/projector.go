// Package projector derives the visible slice of a task collection and its
// aggregate counts. Nothing here mutates its input.
package projector

import "github.com/sandeepkv93/tasklite/internal/model"

// Projection is the filtered, ordered view handed to the renderer. Empty is
// set, and Tasks is nil, when nothing matches the filter.
type Projection struct {
	Filter model.Filter
	Tasks  []model.Task
	Empty  bool
}

type Stats struct {
	Total     int
	Completed int
}

// Project keeps the tasks of c that match filter in their original order.
// An unknown filter behaves like model.FilterAll.
func Project(c model.Collection, filter model.Filter) Projection {
	if !filter.IsValid() {
		filter = model.FilterAll
	}
	var out []model.Task
	for _, t := range c {
		if matches(t, filter) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return Projection{Filter: filter, Empty: true}
	}
	return Projection{Filter: filter, Tasks: out}
}

// Summarize counts all tasks and the completed ones.
func Summarize(c model.Collection) Stats {
	s := Stats{Total: len(c)}
	for _, t := range c {
		if t.Completed {
			s.Completed++
		}
	}
	return s
}

func matches(t model.Task, filter model.Filter) bool {
	switch filter {
	case model.FilterActive:
		return !t.Completed
	case model.FilterCompleted:
		return t.Completed
	default:
		return true
	}
}
