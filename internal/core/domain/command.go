package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// Action is the keyword that selects what a command does.
type Action string

const (
	ActionExit     Action = "bye"
	ActionList     Action = "list"
	ActionHelp     Action = "help"
	ActionMark     Action = "mark"
	ActionUnmark   Action = "unmark"
	ActionTodo     Action = "todo"
	ActionDeadline Action = "deadline"
	ActionEvent    Action = "event"
	ActionDelete   Action = "delete"
	ActionFind     Action = "find"
)

// Command is a parsed and validated user command. Only the fields relevant
// to Action are set.
type Command struct {
	Action      Action
	Index       int
	Description string
	Keyword     string
	By          time.Time
	From        time.Time
	To          time.Time
}

// Apply runs the command against the list. On error the list is left untouched.
func (c Command) Apply(list *TaskList) (Result, error) {
	var (
		task *Task
		err  error
		kind ResultKind
	)

	switch c.Action {
	case ActionExit:
		return Result{Kind: ResultExit, Count: list.Len()}, nil
	case ActionHelp:
		return Result{Kind: ResultHelp, Count: list.Len()}, nil
	case ActionList:
		return Result{Kind: ResultListed, Tasks: list.Tasks(), Count: list.Len()}, nil
	case ActionFind:
		return Result{Kind: ResultFound, Tasks: list.Find(c.Keyword), Count: list.Len()}, nil
	case ActionTodo:
		task, err = list.AddTodo(c.Description)
		kind = ResultAdded
	case ActionDeadline:
		task, err = list.AddDeadline(c.Description, c.By)
		kind = ResultAdded
	case ActionEvent:
		task, err = list.AddEvent(c.Description, c.From, c.To)
		kind = ResultAdded
	case ActionMark:
		task, err = list.Mark(c.Index)
		kind = ResultMarked
	case ActionUnmark:
		task, err = list.Unmark(c.Index)
		kind = ResultUnmarked
	case ActionDelete:
		task, err = list.Delete(c.Index)
		kind = ResultRemoved
	default:
		return Result{}, zerr.With(zerr.Wrap(ErrInvalidAction, "unknown command"), "action", string(c.Action))
	}

	if err != nil {
		return Result{}, zerr.With(err, "action", string(c.Action))
	}
	return Result{Kind: kind, Task: task, Count: list.Len()}, nil
}
