package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"vocabu/internal/domain"
	"vocabu/internal/repository"

	"go.uber.org/zap"
)

const importBatchSize = 500

// ImportResult summarizes a dictionary import
type ImportResult struct {
	Imported int
	Skipped  bool
}

// DictionaryImporter loads "english,translation" lines into the dictionary
type DictionaryImporter struct {
	dictRepo repository.DictionaryRepository
	logger   *zap.Logger
}

// NewDictionaryImporter creates a new importer
func NewDictionaryImporter(dictRepo repository.DictionaryRepository, logger *zap.Logger) *DictionaryImporter {
	return &DictionaryImporter{dictRepo: dictRepo, logger: logger}
}

// ImportFile imports the dictionary file at path
func (i *DictionaryImporter) ImportFile(ctx context.Context, path string, reset bool) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer f.Close()

	result, err := i.Import(ctx, f, reset)
	if err != nil {
		return result, err
	}
	if !result.Skipped {
		i.logger.Info("Dictionary import completed", zap.String("path", path), zap.Int("imported", result.Imported))
	}
	return result, nil
}

// Import reads the header line and then one pair per line, split on the first comma.
// A non-empty dictionary is left untouched unless reset is set.
func (i *DictionaryImporter) Import(ctx context.Context, r io.Reader, reset bool) (ImportResult, error) {
	count, err := i.dictRepo.Count(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to count dictionary: %w", err)
	}
	if count > 0 && !reset {
		i.logger.Info("Dictionary already contains data, skipping import", zap.Int("count", count))
		return ImportResult{Skipped: true}, nil
	}
	if reset {
		i.logger.Info("Resetting dictionary before import")
		if err := i.dictRepo.DeleteAll(ctx); err != nil {
			return ImportResult{}, fmt.Errorf("failed to reset dictionary: %w", err)
		}
	}

	var result ImportResult
	batch := make([]domain.DictionaryWord, 0, importBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := i.dictRepo.SaveBatch(ctx, batch); err != nil {
			return fmt.Errorf("failed to save batch: %w", err)
		}
		result.Imported += len(batch)
		batch = make([]domain.DictionaryWord, 0, importBatchSize)
		return nil
	}

	scanner := bufio.NewScanner(r)
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}

		english, translation, ok := strings.Cut(scanner.Text(), ",")
		english, translation = strings.TrimSpace(english), strings.TrimSpace(translation)
		if !ok || english == "" || translation == "" {
			continue
		}

		batch = append(batch, domain.DictionaryWord{English: english, Translation: translation})
		if len(batch) >= importBatchSize {
			if err := flush(); err != nil {
				return result, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read dictionary: %w", err)
	}

	return result, flush()
}
