package pdfexport

import (
	"bytes"
	_ "embed"
	"fmt"

	"interview-scorer-backend/lib/scoring"
	resultapimodels "interview-scorer-backend/models/api/result"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// DejaVu Sans: шрифт с кириллицей, встроенный в бинарник
var (
	//go:embed font/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed font/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
	//go:embed font/DejaVuSansCondensed-Oblique.ttf
	fontItalic []byte
)

const (
	fontFamily = "DejaVu"
	lineHt     = 6.0
	dateLayout = "2006-01-02 15:04"
)

// GenerateResultReport отчет по интервью: итог, баллы по категориям, ответы на вопросы
func GenerateResultReport(details resultapimodels.ResultDetails) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateResultReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(fontFamily, "", fontRegular)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", fontBold)
	pdf.AddUTF8FontFromBytes(fontFamily, "I", fontItalic)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.SetTitle(details.CandidateName, true)
	pdf.AddPage()

	// заголовок
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, details.CandidateName, "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	pdf.CellFormat(0, lineHt, details.TemplateName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, lineHt, details.Date.Format(dateLayout), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(0, 8, fmt.Sprintf("Score: %.1f / %.1f (%.0f%%)",
		details.Score.Total, details.Score.Max, details.Score.Percentage), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// категории
	pdf.SetFont(fontFamily, "B", 11)
	pdf.SetFillColor(230, 230, 240)
	pdf.CellFormat(90, lineHt+1, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, lineHt+1, "Score", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, lineHt+1, "Max", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, lineHt+1, "Proficiency", "1", 1, "R", true, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	for _, cat := range details.CategoryScores {
		pdf.CellFormat(90, lineHt, cat.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, lineHt, fmt.Sprintf("%.1f", cat.Score), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, lineHt, fmt.Sprintf("%.1f", cat.Max), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, lineHt, fmt.Sprintf("%d%%", cat.Proficiency), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// вопросы в порядке категорий
	answers := details.Answers()
	questions := make(map[string]resultapimodels.QuestionResult, len(details.Questions))
	for _, q := range details.Questions {
		questions[q.ID] = q
	}
	for _, point := range details.Series {
		q := questions[point.QuestionID]
		pdf.SetFont(fontFamily, "B", 10)
		pdf.MultiCell(0, lineHt, fmt.Sprintf("%s. %s [%s]", point.Name, q.Text, details.CategoryName(q.CategoryID)), "", "L", false)
		pdf.SetFont(fontFamily, "", 10)
		answer, ok := answers[q.ID]
		if !ok {
			pdf.MultiCell(0, lineHt, fmt.Sprintf("Not answered (max %.1f)", point.Max), "", "L", false)
			continue
		}
		pdf.MultiCell(0, lineHt, fmt.Sprintf("%s: %.1f / %.1f", answer.Feedback, answer.Score, scoring.MaxScore(q.Question)), "", "L", false)
		if answer.Note != "" {
			pdf.SetFont(fontFamily, "I", 9)
			pdf.MultiCell(0, lineHt, answer.Note, "", "L", false)
		}
	}

	if details.Summary != "" {
		pdf.Ln(4)
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(0, lineHt, "Summary", "", 1, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 10)
		pdf.MultiCell(0, lineHt, details.Summary, "", "L", false)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
