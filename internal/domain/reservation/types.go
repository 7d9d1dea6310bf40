package reservation

import "errors"

var ErrInvalidAction = errors.New("invalid history action")

type Action string

const (
	ActionReserved  Action = "RESERVED"
	ActionCancelled Action = "CANCELLED"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	switch a {
	case ActionReserved, ActionCancelled:
		return true
	default:
		return false
	}
}

func NewAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", ErrInvalidAction
	}
	return a, nil
}
