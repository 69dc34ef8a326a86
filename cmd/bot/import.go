package main

import (
	"fmt"

	"vocabu/internal/config"
	"vocabu/internal/repository/postgres"
	"vocabu/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importFile  string
	importReset bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the dictionary from an english,translation file",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path := cfg.Dictionary.File
		if importFile != "" {
			path = importFile
		}
		reset := cfg.Dictionary.ResetBeforeLoad || importReset

		db, err := openDatabase(cfg.DSN(), logger)
		if err != nil {
			return err
		}
		defer db.Close()

		importer := service.NewDictionaryImporter(postgres.NewDictionaryRepo(db), logger)
		result, err := importer.ImportFile(cmd.Context(), path, reset)
		if err != nil {
			return err
		}

		if result.Skipped {
			logger.Info("Dictionary is not empty, import skipped. Use --reset to reload it")
			return nil
		}
		logger.Info("Dictionary imported", zap.String("path", path), zap.Int("words", result.Imported))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "dictionary file (defaults to DICTIONARY_FILE)")
	importCmd.Flags().BoolVar(&importReset, "reset", false, "delete the dictionary before importing")
}
