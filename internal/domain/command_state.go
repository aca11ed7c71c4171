package domain

import (
	"errors"

	"github.com/samber/lo"
)

type CommandState string

// remember to add new states to the validCommandStates map
const (
	CommandStatePending  CommandState = "pending"
	CommandStateExecuted CommandState = "executed"
	CommandStateFailed   CommandState = "failed"
	CommandStateUndone   CommandState = "undone"
)

var validCommandStates = map[CommandState]struct{}{
	CommandStatePending:  {},
	CommandStateExecuted: {},
	CommandStateFailed:   {},
	CommandStateUndone:   {},
}

func ToCommandState(s string) (CommandState, error) {
	state := CommandState(s)
	if _, ok := validCommandStates[state]; ok {
		return state, nil
	}

	return "", errors.New("invalid command state")
}

func CommandStates() []CommandState {
	return lo.Keys(validCommandStates)
}
