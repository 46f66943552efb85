package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
	"github.com/xuri/excelize/v2"
)

const resultsSheet = "Results"

// ExportService renders the results archive for download
type ExportService interface {
	ExportResultsToExcel(ctx context.Context) ([]byte, error)
}

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

func resultHeaders() []string {
	headers := []string{"Result ID", "Candidate", "Role", "Test ID", "Total Score", "Pass Threshold", "Passed"}
	for _, trait := range models.AllTraits {
		headers = append(headers, trait.Label())
	}
	return append(headers, "Fast Responses", "Optimal Responses", "Slow Responses", "Total Time (s)", "Submitted At")
}

// ExportResultsToExcel writes one row per archived result, newest first
func (s *exportService) ExportResultsToExcel(ctx context.Context) ([]byte, error) {
	results, err := s.repo.Result().ListSortedByTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	headers := resultHeaders()
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(resultsSheet, cell, header)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(resultsSheet, "A1", lastHeader, headerStyle)

	for rowIndex, result := range results {
		for colIndex, value := range resultRow(result) {
			cell, _ := excelize.CoordinatesToCellName(colIndex+1, rowIndex+2)
			f.SetCellValue(resultsSheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported results", "rows", len(results))
	return buf.Bytes(), nil
}

func resultRow(result *models.TestResult) []interface{} {
	report := result.Report()
	skills := result.SkillScores.Data()
	summary := report.BehavioralSummary

	row := []interface{}{
		result.ID,
		result.Username,
		result.Role,
		result.TestID,
		result.Score,
		report.PassThreshold,
		report.Passed,
	}
	for _, trait := range models.AllTraits {
		row = append(row, skills[trait])
	}
	return append(row,
		summary.FastResponses,
		summary.OptimalResponses,
		summary.SlowResponses,
		float64(summary.TotalTimeMs)/1000,
		result.SubmittedAt.Format(time.RFC3339),
	)
}

// ExportFilename names the download after the export time
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("workdna_results_%s.xlsx", now.UTC().Format("20060102_150405"))
}
