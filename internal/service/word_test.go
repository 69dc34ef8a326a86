package service

import (
	"context"
	"errors"
	"testing"

	"vocabu/internal/domain"
	"vocabu/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wordMocks struct {
	words   *testutil.MockWordRepository
	staged  *testutil.MockStagedTranslationRepository
	pending *testutil.MockPendingInteractionRepository
	dict    *testutil.MockDictionaryRepository
	tr      *testutil.MockTranslator
}

func newWordService() (*WordService, *wordMocks) {
	m := &wordMocks{
		words:   new(testutil.MockWordRepository),
		staged:  new(testutil.MockStagedTranslationRepository),
		pending: new(testutil.MockPendingInteractionRepository),
		dict:    new(testutil.MockDictionaryRepository),
		tr:      new(testutil.MockTranslator),
	}
	resolver := NewResolver(m.dict, m.tr, nil, testutil.NewTestLogger())
	return NewWordService(m.words, m.staged, m.pending, resolver, testutil.NewTestLogger()), m
}

func TestWordService_Translate(t *testing.T) {
	service, m := newWordService()

	m.dict.On("FindTranslation", mock.Anything, "hello").Return("", domain.ErrNotFound)
	m.tr.On("Translate", mock.Anything, "hello", "en", "uk").Return("привіт", nil)
	m.staged.On("Save", mock.Anything, mock.MatchedBy(func(s *domain.StagedTranslation) bool {
		return s.ChatID == 123 && s.English == "hello" && s.Translation == "привіт" && s.Method == domain.MethodExternal
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.StagedTranslation).ID = 7
	}).Return(nil)

	staged, detected, err := service.Translate(context.Background(), 123, "hello")

	require.NoError(t, err)
	assert.Equal(t, int64(7), staged.ID)
	assert.Equal(t, domain.LanguageEnglish, detected)
	m.staged.AssertExpectations(t)
}

func TestWordService_Translate_Unsupported(t *testing.T) {
	service, m := newWordService()

	_, detected, err := service.Translate(context.Background(), 123, "???")

	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
	assert.Equal(t, domain.LanguageUnknown, detected)
	m.staged.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWordService_AddStaged(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(m *wordMocks)
		expectedError error
		expectSave    bool
	}{
		{
			name: "new word",
			setupMocks: func(m *wordMocks) {
				m.staged.On("Take", mock.Anything, int64(123), int64(7)).
					Return(testutil.NewTestStaged(7, 123, "hello", "привіт", domain.MethodExternal), nil)
				m.words.On("ExistsByEnglishOrTranslation", mock.Anything, int64(123), "hello", "привіт").Return(false, nil)
				m.words.On("Save", mock.Anything, mock.MatchedBy(func(w *domain.Word) bool {
					return w.ChatID == 123 && w.English == "hello" && w.Translation == "привіт" && w.Score == 0
				})).Return(nil)
			},
			expectSave: true,
		},
		{
			name: "duplicate",
			setupMocks: func(m *wordMocks) {
				m.staged.On("Take", mock.Anything, int64(123), int64(7)).
					Return(testutil.NewTestStaged(7, 123, "hello", "привіт", domain.MethodExternal), nil)
				m.words.On("ExistsByEnglishOrTranslation", mock.Anything, int64(123), "hello", "привіт").Return(true, nil)
			},
			expectedError: domain.ErrAlreadyExists,
		},
		{
			name: "staged translation consumed",
			setupMocks: func(m *wordMocks) {
				m.staged.On("Take", mock.Anything, int64(123), int64(7)).Return(nil, domain.ErrNotFound)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newWordService()
			tt.setupMocks(m)

			added, err := service.AddStaged(context.Background(), 123, 7)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, added)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.MethodExternal, added.Method)
				assert.Equal(t, "hello", added.Word.English)
			}
			if !tt.expectSave {
				m.words.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			}
			m.words.AssertExpectations(t)
			m.staged.AssertExpectations(t)
		})
	}
}

func TestWordService_RequestOwnTranslation(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(m *wordMocks)
		expectedError error
	}{
		{
			name: "pending stored",
			setupMocks: func(m *wordMocks) {
				m.pending.On("Delete", mock.Anything, int64(123)).Return(nil)
				m.staged.On("FindByID", mock.Anything, int64(7)).
					Return(testutil.NewTestStaged(7, 123, "hello", "привіт", domain.MethodExternal), nil)
				m.words.On("ExistsByEnglish", mock.Anything, int64(123), "hello").Return(false, nil)
				m.pending.On("Put", mock.Anything, domain.PendingInteraction{
					ChatID: 123, Kind: domain.InteractionOwnTranslation, Payload: 7,
				}).Return(nil)
			},
		},
		{
			name: "english already in vocabulary",
			setupMocks: func(m *wordMocks) {
				m.pending.On("Delete", mock.Anything, int64(123)).Return(nil)
				m.staged.On("FindByID", mock.Anything, int64(7)).
					Return(testutil.NewTestStaged(7, 123, "hello", "привіт", domain.MethodExternal), nil)
				m.words.On("ExistsByEnglish", mock.Anything, int64(123), "hello").Return(true, nil)
			},
			expectedError: domain.ErrAlreadyExists,
		},
		{
			name: "staged translation missing",
			setupMocks: func(m *wordMocks) {
				m.pending.On("Delete", mock.Anything, int64(123)).Return(nil)
				m.staged.On("FindByID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newWordService()
			tt.setupMocks(m)

			err := service.RequestOwnTranslation(context.Background(), 123, 7)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				m.pending.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			m.pending.AssertExpectations(t)
			m.staged.AssertExpectations(t)
		})
	}
}

func TestWordService_AddStaged_ForeignChat(t *testing.T) {
	service, m := newWordService()
	m.staged.On("Take", mock.Anything, int64(999), int64(7)).Return(nil, domain.ErrNotFound)

	added, err := service.AddStaged(context.Background(), 999, 7)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, added)
	m.words.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

	// the owner can still confirm it afterwards
	m.staged.On("Take", mock.Anything, int64(123), int64(7)).
		Return(testutil.NewTestStaged(7, 123, "hello", "привіт", domain.MethodExternal), nil)
	m.words.On("ExistsByEnglishOrTranslation", mock.Anything, int64(123), "hello", "привіт").Return(false, nil)
	m.words.On("Save", mock.Anything, mock.Anything).Return(nil)

	added, err = service.AddStaged(context.Background(), 123, 7)

	require.NoError(t, err)
	assert.Equal(t, "hello", added.Word.English)
	m.staged.AssertExpectations(t)
	m.words.AssertExpectations(t)
}

func TestWordService_AddOwnTranslation(t *testing.T) {
	service, m := newWordService()

	m.staged.On("Take", mock.Anything, int64(123), int64(7)).
		Return(testutil.NewTestStaged(7, 123, "hello", "привіт", domain.MethodDictionary), nil)
	m.words.On("ExistsByEnglishOrTranslation", mock.Anything, int64(123), "hello", "вітаю").Return(false, nil)
	m.words.On("Save", mock.Anything, mock.MatchedBy(func(w *domain.Word) bool {
		return w.English == "hello" && w.Translation == "вітаю"
	})).Return(nil)

	added, err := service.AddOwnTranslation(context.Background(), 123, 7, "вітаю")

	require.NoError(t, err)
	assert.Equal(t, "вітаю", added.Word.Translation)
	assert.Equal(t, domain.MethodDictionary, added.Method)
	m.words.AssertExpectations(t)
}

func TestWordService_Lists(t *testing.T) {
	service, m := newWordService()
	unlearned := []domain.Word{*testutil.NewTestWord(1, 123, "cat", "кіт", 40)}
	learned := []domain.Word{*testutil.NewTestWord(2, 123, "dog", "пес", 100)}

	m.words.On("FindByChatIDAndLearned", mock.Anything, int64(123), false).Return(unlearned, nil)
	m.words.On("FindByChatIDAndLearned", mock.Anything, int64(123), true).Return(learned, nil)
	m.words.On("DeleteByChatID", mock.Anything, int64(123)).Return(errors.New("db down")).Once()

	words, err := service.Vocabulary(context.Background(), 123)
	require.NoError(t, err)
	assert.Equal(t, unlearned, words)

	words, err = service.Learned(context.Background(), 123)
	require.NoError(t, err)
	assert.Equal(t, learned, words)

	assert.Error(t, service.ClearVocabulary(context.Background(), 123))
}

func TestWordService_AddOwnTranslation_Duplicate(t *testing.T) {
	service, m := newWordService()

	m.staged.On("Take", mock.Anything, int64(123), int64(7)).
		Return(testutil.NewTestStaged(7, 123, "hello", "привіт", domain.MethodExternal), nil)
	m.words.On("ExistsByEnglishOrTranslation", mock.Anything, int64(123), "hello", "вітаю").Return(true, nil)

	_, err := service.AddOwnTranslation(context.Background(), 123, 7, "вітаю")

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	m.words.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
