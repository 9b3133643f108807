package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/tasklite/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add buy milk", TypeAdd},
		{"toggle 1704067200000", TypeToggle},
		{"done #12", TypeToggle},
		{"delete 12", TypeDelete},
		{"/rm 12", TypeDelete},
		{"filter active", TypeFilter},
		{"show completed", TypeFilter},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddOptions(t *testing.T) {
	cmd, err := Parse("/add Buy milk p:HIGH due:2024-01-01 at:09:00")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := AddArgs{Text: "Buy milk", Priority: model.PriorityHigh, Date: "2024-01-01", Time: "09:00"}
	if *cmd.Add != want {
		t.Fatalf("unexpected add args: %+v", *cmd.Add)
	}

	cmd, err = Parse("add   call   mom  ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Text != "call mom" || cmd.Add.Priority != "" || cmd.Add.Date != "" {
		t.Fatalf("unexpected add args: %+v", *cmd.Add)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	inputs := []string{
		"add x p:urgent",
		"add x due:someday",
		"add x at:noon",
		"toggle",
		"toggle abc",
		"delete -3",
		"delete 1 2",
		"filter",
		"filter done",
	}
	for _, in := range inputs {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument error, got %v", in, err)
		}
	}
}

func TestParseEmptyAndUnknown(t *testing.T) {
	for _, in := range []string{"", "   ", "/"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input error, got %v", in, err)
		}
	}

	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/toggle 7")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Toggle: func(a ToggleArgs) (Result, error) {
			called = true
			if a.ID != 7 {
				t.Fatalf("unexpected id: %d", a.ID)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("filter all")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}

func TestParseAddWithoutTextLeavesValidationToStore(t *testing.T) {
	cmd, err := Parse("add p:low")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add.Text != "" || cmd.Add.Priority != model.PriorityLow {
		t.Fatalf("unexpected add args: %+v", *cmd.Add)
	}
}

func TestExecuteMissingArguments(t *testing.T) {
	handlers := Handlers{
		Add:    func(AddArgs) (Result, error) { return Result{}, nil },
		Toggle: func(ToggleArgs) (Result, error) { return Result{}, nil },
		Delete: func(DeleteArgs) (Result, error) { return Result{}, nil },
		Filter: func(FilterArgs) (Result, error) { return Result{}, nil },
	}
	for _, typ := range []Type{TypeAdd, TypeToggle, TypeDelete, TypeFilter} {
		_, err := Execute(Command{Type: typ}, handlers)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("%s without args: expected invalid argument error, got %v", typ, err)
		}
	}
}
