package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/omran/construction-projects/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(register model.ProjectRegister) ([]byte, error) {
	file := excelize.NewFile()

	projectsSheet := "Projects"
	file.SetSheetName("Sheet1", projectsSheet)
	if err := g.writeProjects(file, projectsSheet, register); err != nil {
		return nil, err
	}

	ownersSheet := "Owners"
	file.NewSheet(ownersSheet)
	if err := g.writeOwners(file, ownersSheet, register); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeProjects(file *excelize.File, sheet string, register model.ProjectRegister) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Generated at")
	set("B1", formatDateTime(register.GeneratedAt))
	set("A2", "Projects")
	set("B2", len(register.Rows))

	tableRow := 4
	headers := []string{
		"ID",
		"Name",
		"Type",
		"Status",
		"Internal code",
		"Site plan",
		"License",
		"Contract",
		"Awarding",
		"Completion %",
		"Owners",
		"License no",
		"Contractor",
		"Project value",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, row := range register.Rows {
		rowNum := tableRow + 1 + i
		set(fmt.Sprintf("A%d", rowNum), row.Project.ID)
		set(fmt.Sprintf("B%d", rowNum), row.Project.DisplayName)
		set(fmt.Sprintf("C%d", rowNum), string(row.Project.Type))
		set(fmt.Sprintf("D%d", rowNum), string(row.Project.Status))
		set(fmt.Sprintf("E%d", rowNum), row.Project.InternalCode)
		set(fmt.Sprintf("F%d", rowNum), formatBool(row.Project.HasSitePlan))
		set(fmt.Sprintf("G%d", rowNum), formatBool(row.Project.HasLicense))
		set(fmt.Sprintf("H%d", rowNum), formatBool(row.Project.HasContract))
		set(fmt.Sprintf("I%d", rowNum), formatBool(row.Project.HasAwarding))
		set(fmt.Sprintf("J%d", rowNum), row.Project.Completion)
		set(fmt.Sprintf("K%d", rowNum), row.OwnerCount)
		set(fmt.Sprintf("L%d", rowNum), row.LicenseNo)
		set(fmt.Sprintf("M%d", rowNum), row.ContractorName)
		set(fmt.Sprintf("N%d", rowNum), formatFloat(row.ProjectValue))
	}

	_ = file.SetColWidth(sheet, "A", "A", 8)
	_ = file.SetColWidth(sheet, "B", "B", 40)
	_ = file.SetColWidth(sheet, "C", "E", 14)
	_ = file.SetColWidth(sheet, "F", "K", 12)
	_ = file.SetColWidth(sheet, "L", "M", 24)
	_ = file.SetColWidth(sheet, "N", "N", 16)
	return nil
}

func (g *Generator) writeOwners(file *excelize.File, sheet string, register model.ProjectRegister) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	tableRow := 1
	headers := []string{
		"Project ID",
		"Project",
		"Name (AR)",
		"Name (EN)",
		"Nationality",
		"Right hold",
		"Share %",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, owner := range register.Owners {
		rowNum := tableRow + 1 + i
		set(fmt.Sprintf("A%d", rowNum), owner.ProjectID)
		set(fmt.Sprintf("B%d", rowNum), owner.ProjectName)
		set(fmt.Sprintf("C%d", rowNum), owner.OwnerNameAR)
		set(fmt.Sprintf("D%d", rowNum), owner.OwnerNameEN)
		set(fmt.Sprintf("E%d", rowNum), owner.Nationality)
		set(fmt.Sprintf("F%d", rowNum), owner.RightHoldType)
		set(fmt.Sprintf("G%d", rowNum), fmt.Sprintf("%.2f", owner.SharePercent))
	}

	_ = file.SetColWidth(sheet, "A", "A", 10)
	_ = file.SetColWidth(sheet, "B", "D", 36)
	_ = file.SetColWidth(sheet, "E", "F", 16)
	_ = file.SetColWidth(sheet, "G", "G", 10)
	return nil
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func formatFloat(value *float64) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *value)
}
