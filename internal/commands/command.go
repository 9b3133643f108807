package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/tasklite/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeDelete Type = "delete"
	TypeFilter Type = "filter"
)

var aliases = map[string]Type{
	"done": TypeToggle,
	"rm":   TypeDelete,
	"del":  TypeDelete,
	"show": TypeFilter,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs leaves Priority empty when the command did not name one; the caller
// applies the currently selected priority. Date and Time stay empty unless
// given.
type AddArgs struct {
	Text     string
	Priority model.Priority
	Date     string
	Time     string
}

type ToggleArgs struct {
	ID int64
}

type DeleteArgs struct {
	ID int64
}

type FilterArgs struct {
	Filter model.Filter
}

type Command struct {
	Type   Type
	Add    *AddArgs
	Toggle *ToggleArgs
	Delete *DeleteArgs
	Filter *FilterArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	typ := Type(head)
	if alias, ok := aliases[head]; ok {
		typ = alias
	}

	switch typ {
	case TypeAdd:
		return parseAdd(args)
	case TypeToggle:
		id, err := parseID(string(typ), args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeToggle, Toggle: &ToggleArgs{ID: id}}, nil
	case TypeDelete:
		id, err := parseID(string(typ), args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeDelete, Delete: &DeleteArgs{ID: id}}, nil
	case TypeFilter:
		return parseFilter(args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd reads "add <text...> [p:<priority>] [due:YYYY-MM-DD] [at:HH:MM]".
// Blank text is passed through; the task store rejects it.
func parseAdd(args []string) (Command, error) {
	out := AddArgs{}
	words := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "p:"):
			p, err := model.ParsePriority(arg[len("p:"):])
			if err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
			}
			out.Priority = p
		case strings.HasPrefix(lower, "due:"):
			out.Date = arg[len("due:"):]
			if err := model.ValidateDate(out.Date); err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
			}
		case strings.HasPrefix(lower, "at:"):
			out.Time = arg[len("at:"):]
			if err := model.ValidateTime(out.Time); err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
			}
		default:
			words = append(words, arg)
		}
	}
	out.Text = strings.TrimSpace(strings.Join(words, " "))
	return Command{Type: TypeAdd, Add: &out}, nil
}

func parseFilter(args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires one of: all, active, completed"}
	}
	f, err := model.ParseFilter(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeFilter, Filter: &FilterArgs{Filter: f}}, nil
}

func parseID(name string, args []string) (int64, error) {
	if len(args) != 1 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: name + " requires a task id"}
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task id: %s", args[0])}
	}
	return id, nil
}
