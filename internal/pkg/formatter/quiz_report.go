package formatter

import (
	"bytes"
	"fmt"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

const (
	ReportContentType = "application/pdf"

	reportTitle = "Quiz Result Report"
)

// QuizReportFormatter renders a submitted quiz result as a downloadable PDF.
type QuizReportFormatter struct{}

func NewQuizReportFormatter() *QuizReportFormatter {
	return &QuizReportFormatter{}
}

func (f *QuizReportFormatter) Format(result *entity.QuizResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 10, reportTitle)
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Score: %d / %d", result.Score, result.Total))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Submitted: %s", result.SubmittedAt.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	_, lineHeight := pdf.GetFontSize()

	for i, verdict := range result.Verdicts {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, lineHeight*1.5, fmt.Sprintf("%d. %s", i+1, verdict.Question), "", "", false)

		pdf.SetFont("Arial", "", 11)
		mark := "Incorrect"
		if verdict.IsCorrect {
			mark = "Correct"
		}
		pdf.MultiCell(0, lineHeight*1.4,
			fmt.Sprintf("Your answer: %s (%s)", verdict.UserAnswer, mark), "", "", false)
		if !verdict.IsCorrect {
			pdf.MultiCell(0, lineHeight*1.4,
				fmt.Sprintf("Correct answer: %s", verdict.CorrectAnswer), "", "", false)
		}
		if verdict.Explanation != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.MultiCell(0, lineHeight*1.4, verdict.Explanation, "", "", false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quiz report: %w", err)
	}
	return buf.Bytes(), nil
}
