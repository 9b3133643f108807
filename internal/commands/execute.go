package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Toggle func(ToggleArgs) (Result, error)
	Delete func(DeleteArgs) (Result, error)
	Filter func(FilterArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		if cmd.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add arguments missing"}
		}
		return handlers.Add(*cmd.Add)
	case TypeToggle:
		if handlers.Toggle == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "toggle handler not configured"}
		}
		if cmd.Toggle == nil {
			return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle arguments missing"}
		}
		return handlers.Toggle(*cmd.Toggle)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "delete handler not configured"}
		}
		if cmd.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete arguments missing"}
		}
		return handlers.Delete(*cmd.Delete)
	case TypeFilter:
		if handlers.Filter == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "filter handler not configured"}
		}
		if cmd.Filter == nil {
			return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter arguments missing"}
		}
		return handlers.Filter(*cmd.Filter)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
