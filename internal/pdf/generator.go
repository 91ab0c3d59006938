package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/omran/construction-projects/internal/model"
)

// Generator renders project summary sheets. A UTF-8 font file is required
// for Arabic owner and project names; without one the generator falls back
// to the built-in Helvetica.
type Generator struct {
	fontName string
	fontData []byte
}

func NewGenerator(fontPath string) (*Generator, error) {
	if fontPath == "" {
		return &Generator{fontName: "Helvetica"}, nil
	}
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read pdf font: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("font data is empty")
	}
	return &Generator{fontName: "NotoSans", fontData: data}, nil
}

func (g *Generator) Generate(summary model.ProjectSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	if len(g.fontData) > 0 {
		pdf.AddUTF8FontFromBytes(g.fontName, "", g.fontData)
		pdf.AddUTF8FontFromBytes(g.fontName, "B", g.fontData)
	}

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Project Summary", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s (Project #%d)", safeValue(summary.Project.DisplayName), summary.Project.ID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Project", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	infoLines := []string{
		fmt.Sprintf("Type: %s", safeValue(string(summary.Project.Type))),
		fmt.Sprintf("Status: %s", safeValue(string(summary.Project.Status))),
		fmt.Sprintf("Internal code: %s", safeValue(summary.Project.InternalCode)),
		fmt.Sprintf("Completion: %d%%", summary.Project.Completion),
	}
	for _, line := range infoLines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Stages", "", 1, "L", false, 0, "")
	stageWidths := []float64{60, 30, 90}
	drawTableRow(pdf, g.fontName, []string{"Stage", "Present", "Reference"}, stageWidths, true)
	drawTableRow(pdf, g.fontName, []string{"Site plan", yesNo(summary.SitePlan != nil), sitePlanRef(summary.SitePlan)}, stageWidths, false)
	drawTableRow(pdf, g.fontName, []string{"Building license", yesNo(summary.License != nil), licenseRef(summary.License)}, stageWidths, false)
	drawTableRow(pdf, g.fontName, []string{"Contract", yesNo(summary.Contract != nil), contractRef(summary.Contract)}, stageWidths, false)
	drawTableRow(pdf, g.fontName, []string{"Awarding", yesNo(summary.Awarding != nil), awardingRef(summary.Awarding)}, stageWidths, false)
	pdf.Ln(4)

	if len(summary.Owners) > 0 {
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Owners", "", 1, "L", false, 0, "")
		ownerWidths := []float64{60, 60, 35, 25}
		drawTableRow(pdf, g.fontName, []string{"Name (AR)", "Name (EN)", "Right hold", "Share %"}, ownerWidths, true)
		for _, owner := range summary.Owners {
			drawTableRow(pdf, g.fontName, []string{
				owner.OwnerNameAR,
				owner.OwnerNameEN,
				owner.RightHoldType,
				formatAmount(owner.SharePercent, 2),
			}, ownerWidths, false)
		}
		pdf.Ln(4)
	}

	if summary.Contract != nil {
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Contract figures", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		figures := []string{
			fmt.Sprintf("Contractor: %s", safeValue(summary.Contract.ContractorName)),
			fmt.Sprintf("Project value: %s", formatOptAmount(summary.Contract.ProjectValue)),
			fmt.Sprintf("Bank value: %s", formatOptAmount(summary.Contract.BankValue)),
			fmt.Sprintf("Owner value: %s", formatOptAmount(summary.Contract.OwnerValue)),
		}
		for _, line := range figures {
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 8, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func yesNo(present bool) string {
	if present {
		return "yes"
	}
	return "no"
}

func sitePlanRef(plan *model.SitePlan) string {
	if plan == nil {
		return "—"
	}
	return safeValue(strings.TrimSpace(plan.Municipality + " " + plan.LandNo))
}

func licenseRef(license *model.BuildingLicense) string {
	if license == nil {
		return "—"
	}
	return fmt.Sprintf("No. %s, issued %s", safeValue(license.LicenseNo), formatDate(license.IssueDate))
}

func contractRef(contract *model.Contract) string {
	if contract == nil {
		return "—"
	}
	return fmt.Sprintf("Tender %s, %s", safeValue(contract.TenderNo), formatDate(contract.ContractDate))
}

func awardingRef(awarding *model.Awarding) string {
	if awarding == nil {
		return "—"
	}
	return fmt.Sprintf("No. %s, %s", safeValue(awarding.ProjectNumber), formatDate(awarding.AwardDate))
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

func formatAmount(value float64, precision int) string {
	format := fmt.Sprintf("%%.%df", precision)
	return fmt.Sprintf(format, value)
}

func formatOptAmount(value *float64) string {
	if value == nil {
		return "—"
	}
	return formatAmount(*value, 2)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "—"
	}
	return t.Format("02.01.2006")
}
