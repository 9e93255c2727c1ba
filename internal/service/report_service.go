package service

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/tryout-api/internal/domain/repository"
)

// ReportService builds xlsx workbooks from stored scoring output for the
// portal's report download endpoints. All numeric cells carry two-decimal
// strings; full precision stays in the database.
type ReportService struct {
	packageRepo  repository.PackageRepository
	resultRepo   repository.ResultRepository
	questionRepo repository.QuestionRepository
}

// NewReportService creates a new report service
func NewReportService(
	packageRepo repository.PackageRepository,
	resultRepo repository.ResultRepository,
	questionRepo repository.QuestionRepository,
) *ReportService {
	return &ReportService{
		packageRepo:  packageRepo,
		resultRepo:   resultRepo,
		questionRepo: questionRepo,
	}
}

// BuildSubtestReport renders one subtest's result table: user id, name, one
// 1/0/blank column per question, correct and incorrect counts, score.
// Returns the workbook and a suggested file name.
func (s *ReportService) BuildSubtestReport(subtestID uint) (*excelize.File, string, error) {
	subtest, err := s.packageRepo.GetSubtestByID(subtestID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load subtest #%d: %w", subtestID, err)
	}
	results, err := s.resultRepo.GetSubtestResults(subtestID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load results for subtest #%d: %w", subtestID, err)
	}

	f := excelize.NewFile()
	sheetName := SubjectLabel(subtest.Code)
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to create stream writer: %w", err)
	}

	// Header columns follow the subtest's question count, not the result
	// rows, so an unscored subtest still renders a complete sheet.
	count, err := s.questionRepo.CountBySubtestID(subtestID)
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to count questions for subtest #%d: %w", subtestID, err)
	}
	questionCount := int(count)

	headers := []interface{}{"User ID", "Name"}
	for i := 0; i < questionCount; i++ {
		headers = append(headers, fmt.Sprintf("Q%d", i+1))
	}
	headers = append(headers, "Correct", "Incorrect", "Score")
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[ReportService] Failed to write header row: %v", err)
	}

	for i, r := range results {
		row := []interface{}{r.UserID, r.Username}
		for _, slot := range r.Breakdown {
			row = append(row, slot) // "1", "0" or blank when no answer was recorded
		}
		row = append(row, r.CorrectCount, r.IncorrectCount, fmt.Sprintf("%.2f", r.Score))

		cell := fmt.Sprintf("A%d", i+2)
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[ReportService] Failed to write row %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to flush stream writer: %w", err)
	}

	filename := fmt.Sprintf("subtest_%d_results.xlsx", subtestID)
	return f, filename, nil
}

// BuildLeaderboardReport renders the package-wide ranking table.
func (s *ReportService) BuildLeaderboardReport(packageID uint) (*excelize.File, string, error) {
	pkg, err := s.packageRepo.GetByID(packageID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load package #%d: %w", packageID, err)
	}
	entries, err := s.resultRepo.GetLeaderboard(packageID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load leaderboard for package #%d: %w", packageID, err)
	}

	f := excelize.NewFile()
	sheetName := "Leaderboard"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to create stream writer: %w", err)
	}

	headers := []interface{}{"Rank", "User ID", "Name", "Subtests", "Total Score", "Average Score"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[ReportService] Failed to write header row: %v", err)
	}

	for i, e := range entries {
		row := []interface{}{
			e.Rank,
			e.UserID,
			e.Username,
			e.SubtestCount,
			fmt.Sprintf("%.2f", e.TotalScore),
			fmt.Sprintf("%.2f", e.AverageScore),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[ReportService] Failed to write row %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("failed to flush stream writer: %w", err)
	}

	filename := fmt.Sprintf("%s_leaderboard.xlsx", sanitizeFilename(pkg.Title))
	return f, filename, nil
}

func sanitizeFilename(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ', r == '-', r == '_':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "package"
	}
	return string(out)
}
