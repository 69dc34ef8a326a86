package domain

// Score bounds for a vocabulary word
const (
	MinScore = 0
	MaxScore = 100
)

// Word is a vocabulary entry owned by a chat
type Word struct {
	ID          int64
	ChatID      int64
	English     string
	Translation string
	Score       int
	Learned     bool
}

// IncrementScore raises the score, clamped at MaxScore.
// Reaching MaxScore marks the word as learned. Returns the learned flag.
func (w *Word) IncrementScore(increment int) bool {
	w.Score += increment
	if w.Score >= MaxScore {
		w.Score = MaxScore
		w.Learned = true
	}
	return w.Learned
}

// DecrementScore lowers the score, clamped at MinScore.
// Learned words stay learned.
func (w *Word) DecrementScore(decrement int) {
	w.Score -= decrement
	if w.Score < MinScore {
		w.Score = MinScore
	}
}

// DictionaryWord is a curated English/target pair shared by all users
type DictionaryWord struct {
	ID          int64
	English     string
	Translation string
}

// ToWord converts a dictionary pair into an unsaved vocabulary word
func (d DictionaryWord) ToWord() Word {
	return Word{English: d.English, Translation: d.Translation}
}
