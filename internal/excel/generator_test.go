package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/omran/construction-projects/internal/model"
)

func TestGenerateWorkbook(t *testing.T) {
	value := 1500000.0
	register := model.ProjectRegister{
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Rows: []model.RegisterRow{
			{
				Project: model.ProjectView{
					Project: model.Project{
						Name:         "مشروع فيلا",
						Type:         model.ProjectTypeResidential,
						Status:       model.ProjectStatusInProgress,
						InternalCode: "M13",
						DisplayName:  "محمد الهاشمي وشركاؤه",
					},
					HasSitePlan: true,
					HasLicense:  true,
					Completion:  67,
				},
				OwnerCount:     2,
				LicenseNo:      "BL-1001",
				ContractorName: "شركة البناء",
				ProjectValue:   &value,
			},
		},
		Owners: []model.RegisterOwnerRow{
			{ProjectID: 1, ProjectName: "محمد الهاشمي وشركاؤه", OwnerNameAR: "محمد", SharePercent: 60},
			{ProjectID: 1, ProjectName: "محمد الهاشمي وشركاؤه", OwnerNameAR: "سالم", SharePercent: 40},
		},
	}

	content, err := NewGenerator().Generate(register)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("empty workbook")
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Projects" || sheets[1] != "Owners" {
		t.Fatalf("sheets = %v", sheets)
	}

	name, err := file.GetCellValue("Projects", "B5")
	if err != nil {
		t.Fatalf("read cell failed: %v", err)
	}
	if name != "محمد الهاشمي وشركاؤه" {
		t.Fatalf("project name cell = %q", name)
	}

	ownerName, err := file.GetCellValue("Owners", "C3")
	if err != nil {
		t.Fatalf("read cell failed: %v", err)
	}
	if ownerName != "سالم" {
		t.Fatalf("owner name cell = %q", ownerName)
	}
}
