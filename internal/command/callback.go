package command

import (
	"strconv"
	"strings"
)

// Action is the name part of callback data
type Action string

const (
	ActionUnknown           Action = ""
	ActionAddToVocabulary   Action = "ADD_TO_VOCABULARY"
	ActionAddOwnTranslation Action = "ADD_OWN_TRANSLATION"
	ActionAddToDictionary   Action = "ADD_TO_DICTIONARY"
	ActionBanUser           Action = "BAN_USER"
	ActionUnbanUser         Action = "UNBAN_USER"
	ActionStartExercise     Action = "START_EXERCISE"
	ActionSkipExercise      Action = "SKIP_EXERCISE"
	ActionCorrectAnswer     Action = "CORRECT_EXERCISE_ANSWER"
	ActionWrongAnswer       Action = "WRONG_EXERCISE_ANSWER"
)

var actions = map[Action]bool{
	ActionAddToVocabulary:   false,
	ActionAddOwnTranslation: false,
	ActionAddToDictionary:   true,
	ActionBanUser:           true,
	ActionUnbanUser:         true,
	ActionStartExercise:     false,
	ActionSkipExercise:      false,
	ActionCorrectAnswer:     false,
	ActionWrongAnswer:       false,
}

// Callback is a parsed "ACTION" or "ACTION:ID" payload
type Callback struct {
	Action Action
	ID     int64
	HasID  bool
}

// ParseCallback parses callback data. Unknown actions and malformed ids
// map to ActionUnknown.
func ParseCallback(data string) Callback {
	name, rawID, hasID := strings.Cut(strings.TrimSpace(data), ":")
	action := Action(name)
	if _, ok := actions[action]; !ok {
		return Callback{Action: ActionUnknown}
	}
	if !hasID {
		return Callback{Action: action}
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return Callback{Action: ActionUnknown}
	}
	return Callback{Action: action, ID: id, HasID: true}
}

// Data renders callback data for a button
func Data(action Action, id int64) string {
	return string(action) + ":" + strconv.FormatInt(id, 10)
}

// AdminOnly reports whether the action is restricted to the admin chat
func (a Action) AdminOnly() bool {
	return actions[a]
}
