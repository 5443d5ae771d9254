package excel

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/vocabcoach/internal/database"
	"github.com/example/vocabcoach/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath      string // Path to the Excel or CSV file
	LearnerID     int64  // Learner who owns the imported words
	WordColumn    string // Column with the word
	MeaningColumn string // Column with the meaning
	SourceColumn  string // Column with the originating content id (optional)
	LevelColumn   string // Column with the level tag (optional)
	SheetName     string // Name of the sheet to import
	StartRow      int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:    "A",
		MeaningColumn: "B",
		SourceColumn:  "C",
		LevelColumn:   "D",
		SheetName:     "Sheet1",
		StartRow:      2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportWords imports vocabulary from an Excel or CSV file. New items
// start with fresh scheduling state and are due immediately.
func ImportWords(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

// importFromExcel imports vocabulary from an Excel file
func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	vocabRepo := database.NewVocabularyRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := processRow(row, config, vocabRepo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV imports vocabulary from a CSV file
func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %v", err)
	}

	vocabRepo := database.NewVocabularyRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range records {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := processRow(row, config, vocabRepo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// processRow validates one spreadsheet row and creates the item unless
// the learner already has the word.
func processRow(row []string, config ImportConfig, vocabRepo *database.VocabularyRepository, result *ImportResult) error {
	word := cellValue(row, config.WordColumn)
	meaning := cellValue(row, config.MeaningColumn)
	if word == "" || meaning == "" {
		result.Skipped++
		return nil
	}

	if _, err := vocabRepo.GetByLearnerAndWord(config.LearnerID, word); err == nil {
		result.Skipped++
		return nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	now := time.Now()
	item := &models.VocabularyItem{
		LearnerID:      config.LearnerID,
		Word:           word,
		Meaning:        meaning,
		SourceID:       cellValue(row, config.SourceColumn),
		LevelTag:       parseLevel(cellValue(row, config.LevelColumn)),
		CreatedAt:      now,
		EaseFactor:     2.5,
		IntervalDays:   1,
		Repetitions:    0,
		NextReviewDate: now,
	}
	if err := vocabRepo.Create(item); err != nil {
		return err
	}

	result.Created++
	return nil
}

// cellValue returns the trimmed value of a lettered column, or "" when
// the row is too short.
func cellValue(row []string, column string) string {
	idx := columnIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnIndex converts a spreadsheet column letter ("A".."Z", "AA"...)
// to a zero-based index.
func columnIndex(column string) int {
	idx := 0
	for _, r := range strings.ToUpper(column) {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1
}

func parseLevel(value string) models.Level {
	switch strings.ToLower(value) {
	case string(models.LevelIntermediate):
		return models.LevelIntermediate
	case string(models.LevelAdvanced):
		return models.LevelAdvanced
	default:
		return models.LevelBeginner
	}
}
