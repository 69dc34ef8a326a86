package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vocabu/internal/domain"
	"vocabu/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDictionaryImporter_Import(t *testing.T) {
	input := "english,ukrainian\ncat,кіт\n dog , пес \nbroken line\n,empty\nhello,привіт, вітаю\n"

	dict := new(testutil.MockDictionaryRepository)
	dict.On("Count", mock.Anything).Return(0, nil)
	dict.On("SaveBatch", mock.Anything, []domain.DictionaryWord{
		{English: "cat", Translation: "кіт"},
		{English: "dog", Translation: "пес"},
		{English: "hello", Translation: "привіт, вітаю"},
	}).Return(nil)

	importer := NewDictionaryImporter(dict, testutil.NewTestLogger())
	result, err := importer.Import(context.Background(), strings.NewReader(input), false)

	require.NoError(t, err)
	assert.Equal(t, ImportResult{Imported: 3}, result)
	dict.AssertExpectations(t)
	dict.AssertNotCalled(t, "DeleteAll", mock.Anything)
}

func TestDictionaryImporter_Batches(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("english,ukrainian\n")
	for i := 0; i < importBatchSize+10; i++ {
		fmt.Fprintf(&sb, "word%d,слово%d\n", i, i)
	}

	dict := new(testutil.MockDictionaryRepository)
	dict.On("Count", mock.Anything).Return(0, nil)
	dict.On("SaveBatch", mock.Anything, mock.MatchedBy(func(words []domain.DictionaryWord) bool {
		return len(words) == importBatchSize
	})).Return(nil).Once()
	dict.On("SaveBatch", mock.Anything, mock.MatchedBy(func(words []domain.DictionaryWord) bool {
		return len(words) == 10
	})).Return(nil).Once()

	importer := NewDictionaryImporter(dict, testutil.NewTestLogger())
	result, err := importer.Import(context.Background(), strings.NewReader(sb.String()), false)

	require.NoError(t, err)
	assert.Equal(t, importBatchSize+10, result.Imported)
	dict.AssertExpectations(t)
}

func TestDictionaryImporter_SkipAndReset(t *testing.T) {
	t.Run("non empty dictionary is skipped", func(t *testing.T) {
		dict := new(testutil.MockDictionaryRepository)
		dict.On("Count", mock.Anything).Return(10, nil)

		importer := NewDictionaryImporter(dict, testutil.NewTestLogger())
		result, err := importer.Import(context.Background(), strings.NewReader("h\ncat,кіт\n"), false)

		require.NoError(t, err)
		assert.True(t, result.Skipped)
		dict.AssertNotCalled(t, "SaveBatch", mock.Anything, mock.Anything)
	})

	t.Run("reset deletes first", func(t *testing.T) {
		dict := new(testutil.MockDictionaryRepository)
		dict.On("Count", mock.Anything).Return(10, nil)
		dict.On("DeleteAll", mock.Anything).Return(nil)
		dict.On("SaveBatch", mock.Anything, []domain.DictionaryWord{{English: "cat", Translation: "кіт"}}).Return(nil)

		importer := NewDictionaryImporter(dict, testutil.NewTestLogger())
		result, err := importer.Import(context.Background(), strings.NewReader("h\ncat,кіт\n"), true)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		dict.AssertExpectations(t)
	})

	t.Run("batch failure", func(t *testing.T) {
		dict := new(testutil.MockDictionaryRepository)
		dict.On("Count", mock.Anything).Return(0, nil)
		dict.On("SaveBatch", mock.Anything, mock.Anything).Return(errors.New("copy failed"))

		importer := NewDictionaryImporter(dict, testutil.NewTestLogger())
		_, err := importer.Import(context.Background(), strings.NewReader("h\ncat,кіт\n"), false)

		assert.Error(t, err)
	})
}

func TestDictionaryImporter_ImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.csv")
	require.NoError(t, os.WriteFile(path, []byte("english,ukrainian\nsun,сонце\n"), 0o600))

	dict := new(testutil.MockDictionaryRepository)
	dict.On("Count", mock.Anything).Return(0, nil)
	dict.On("SaveBatch", mock.Anything, []domain.DictionaryWord{{English: "sun", Translation: "сонце"}}).Return(nil)

	importer := NewDictionaryImporter(dict, testutil.NewTestLogger())
	result, err := importer.ImportFile(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	_, err = importer.ImportFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), false)
	assert.Error(t, err)
}
