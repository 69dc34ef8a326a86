package domain

// OptionCount is the number of choices in an exercise
const OptionCount = 4

// Outcome tags an exercise option
type Outcome string

const (
	OutcomeCorrect Outcome = "CORRECT_EXERCISE_ANSWER"
	OutcomeWrong   Outcome = "WRONG_EXERCISE_ANSWER"
)

// Exercise is the active multiple-choice quiz of a chat
type Exercise struct {
	ChatID      int64
	WordID      int64
	EngToTarget bool
	English     string
	Translation string
	Options     []string
	Outcomes    []Outcome
}

// Question returns the text the user has to translate
func (e *Exercise) Question() string {
	if e.EngToTarget {
		return e.English
	}
	return e.Translation
}

// CorrectIndex returns the position of the correct option or -1
func (e *Exercise) CorrectIndex() int {
	for i, o := range e.Outcomes {
		if o == OutcomeCorrect {
			return i
		}
	}
	return -1
}
