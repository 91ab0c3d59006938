package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/omran/construction-projects/internal/model"
)

type capturePDF struct{ summary *model.ProjectSummary }

func (g *capturePDF) Generate(summary model.ProjectSummary) ([]byte, error) {
	g.summary = &summary
	return []byte("%PDF"), nil
}

type captureExcel struct{ register *model.ProjectRegister }

func (g *captureExcel) Generate(register model.ProjectRegister) ([]byte, error) {
	g.register = &register
	return []byte("PK"), nil
}

func newExportFixture() (*ExportService, *capturePDF, *captureExcel, *SitePlanService, *LicenseService, *memStore) {
	store := newMemStore()
	projects := &fakeProjects{store}
	plans := &fakePlans{store}
	licenses := &fakeLicenses{store}
	contracts := &fakeContracts{store}
	awardings := &fakeAwardings{store}
	files := &fakeFiles{}
	pdf := &capturePDF{}
	xlsx := &captureExcel{}
	svc := NewExportService(projects, plans, licenses, contracts, awardings, pdf, xlsx)
	return svc,
		pdf,
		xlsx,
		NewSitePlanService(projects, plans, files),
		NewLicenseService(projects, plans, licenses, files),
		store
}

func TestProjectSummaryPDF(t *testing.T) {
	svc, pdf, _, planSvc, licenseSvc, store := newExportFixture()
	project := store.addProject("سكني")

	if _, err := planSvc.Create(context.Background(), project.ID, SitePlanInput{
		OwnersRaw: json.RawMessage(`[{"owner_name_ar":"محمد"}]`),
	}); err != nil {
		t.Fatalf("siteplan create failed: %v", err)
	}
	if _, err := licenseSvc.Create(context.Background(), project.ID, LicenseInput{
		LicenseNo: strPtr("BL-1001"),
	}); err != nil {
		t.Fatalf("license create failed: %v", err)
	}

	result, err := svc.ProjectSummaryPDF(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if result.FileName != "project-1-summary.pdf" {
		t.Fatalf("file name = %q", result.FileName)
	}
	if pdf.summary == nil {
		t.Fatal("generator was not invoked")
	}
	if pdf.summary.SitePlan == nil || pdf.summary.License == nil {
		t.Fatalf("summary stages missing: %+v", pdf.summary)
	}
	if pdf.summary.Contract != nil || pdf.summary.Awarding != nil {
		t.Fatalf("absent stages should be nil: %+v", pdf.summary)
	}
	if len(pdf.summary.Owners) != 1 {
		t.Fatalf("summary owners = %d, want 1", len(pdf.summary.Owners))
	}
	if pdf.summary.Project.Completion != 67 {
		t.Fatalf("completion = %d, want 67", pdf.summary.Project.Completion)
	}
}

func TestProjectSummaryPDFMissingProject(t *testing.T) {
	svc, _, _, _, _, _ := newExportFixture()
	_, err := svc.ProjectSummaryPDF(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestProjectsExcel(t *testing.T) {
	svc, _, xlsx, planSvc, licenseSvc, store := newExportFixture()
	first := store.addProject("سكني")
	store.addProject("تجاري")

	if _, err := planSvc.Create(context.Background(), first.ID, SitePlanInput{
		OwnersRaw: json.RawMessage(`[{"owner_name_ar":"محمد"},{"owner_name_ar":"سالم"}]`),
	}); err != nil {
		t.Fatalf("siteplan create failed: %v", err)
	}
	if _, err := licenseSvc.Create(context.Background(), first.ID, LicenseInput{
		LicenseNo: strPtr("BL-1001"),
	}); err != nil {
		t.Fatalf("license create failed: %v", err)
	}

	result, err := svc.ProjectsExcel(context.Background())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if result.FileName == "" || len(result.Content) == 0 {
		t.Fatalf("empty result: %+v", result)
	}
	if xlsx.register == nil {
		t.Fatal("generator was not invoked")
	}
	if len(xlsx.register.Rows) != 2 {
		t.Fatalf("register rows = %d, want 2", len(xlsx.register.Rows))
	}
	if xlsx.register.Rows[0].OwnerCount != 2 || xlsx.register.Rows[0].LicenseNo != "BL-1001" {
		t.Fatalf("first row mismatch: %+v", xlsx.register.Rows[0])
	}
	if len(xlsx.register.Owners) != 2 {
		t.Fatalf("owner rows = %d, want 2", len(xlsx.register.Owners))
	}
	if xlsx.register.Rows[1].OwnerCount != 0 {
		t.Fatalf("second row should have no owners: %+v", xlsx.register.Rows[1])
	}
}
