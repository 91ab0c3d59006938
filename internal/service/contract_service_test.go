package service

import (
	"context"
	"errors"
	"testing"
)

func newContractFixture() (*ContractService, *LicenseService, *memStore) {
	store := newMemStore()
	projects := &fakeProjects{store}
	plans := &fakePlans{store}
	licenses := &fakeLicenses{store}
	contracts := &fakeContracts{store}
	files := &fakeFiles{}
	return NewContractService(projects, licenses, contracts, files),
		NewLicenseService(projects, plans, licenses, files),
		store
}

func TestContractCreateSnapshotsLicense(t *testing.T) {
	contractSvc, licenseSvc, store := newContractFixture()
	project := store.addProject("سكني")

	if _, err := licenseSvc.Create(context.Background(), project.ID, LicenseInput{
		LicenseNo:      strPtr("BL-1001"),
		ContractorName: strPtr("شركة البناء"),
	}); err != nil {
		t.Fatalf("license create failed: %v", err)
	}

	contract, err := contractSvc.Create(context.Background(), project.ID, ContractInput{
		TenderNo: strPtr("T-55"),
	})
	if err != nil {
		t.Fatalf("contract create failed: %v", err)
	}
	if contract.LicenseSnapshot.IsEmpty() {
		t.Fatal("snapshot should be populated when a license exists")
	}
	if contract.LicenseSnapshot.License.LicenseNo != "BL-1001" {
		t.Fatalf("snapshot license mismatch: %+v", contract.LicenseSnapshot.License)
	}
	if contract.LicenseSnapshot.Parties.ContractorName != "شركة البناء" {
		t.Fatalf("snapshot parties mismatch: %+v", contract.LicenseSnapshot.Parties)
	}
}

func TestContractCreateWithoutLicense(t *testing.T) {
	contractSvc, _, store := newContractFixture()
	project := store.addProject("سكني")

	contract, err := contractSvc.Create(context.Background(), project.ID, ContractInput{})
	if err != nil {
		t.Fatalf("contract create failed: %v", err)
	}
	if !contract.LicenseSnapshot.IsEmpty() {
		t.Fatalf("snapshot should be empty without a license: %+v", contract.LicenseSnapshot)
	}
}

func TestContractCreateConflict(t *testing.T) {
	contractSvc, _, store := newContractFixture()
	project := store.addProject("سكني")

	if _, err := contractSvc.Create(context.Background(), project.ID, ContractInput{}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := contractSvc.Create(context.Background(), project.ID, ContractInput{})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("second create error = %v, want ErrConflict", err)
	}
}

func TestContractValueValidation(t *testing.T) {
	contractSvc, _, store := newContractFixture()
	project := store.addProject("سكني")

	_, err := contractSvc.Create(context.Background(), project.ID, ContractInput{
		ProjectValue: floatPtr(0),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero project value error = %v, want ErrInvalidInput", err)
	}

	_, err = contractSvc.Create(context.Background(), project.ID, ContractInput{
		BankValue: floatPtr(-5),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative bank value error = %v, want ErrInvalidInput", err)
	}
}

func TestContractFeeModeValidation(t *testing.T) {
	contractSvc, _, store := newContractFixture()
	project := store.addProject("سكني")

	_, err := contractSvc.Create(context.Background(), project.ID, ContractInput{
		OwnerFees: &FeeBlockInput{ExtraFeeMode: strPtr("hourly")},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var fieldError *FieldError
	if !errors.As(err, &fieldError) || fieldError.Field != "owner_fees.extra_fee_mode" {
		t.Fatalf("error should name owner_fees.extra_fee_mode, got %v", err)
	}

	contract, err := contractSvc.Create(context.Background(), project.ID, ContractInput{
		BankFees: &FeeBlockInput{ExtraFeeMode: strPtr("percent"), ExtraFeeValue: floatPtr(2.5)},
	})
	if err != nil {
		t.Fatalf("valid fee mode rejected: %v", err)
	}
	if contract.BankFees.ExtraFeeMode != "percent" {
		t.Fatalf("fee mode not applied: %+v", contract.BankFees)
	}
}

func TestContractUpdateKeepsSnapshot(t *testing.T) {
	contractSvc, licenseSvc, store := newContractFixture()
	project := store.addProject("سكني")

	if _, err := licenseSvc.Create(context.Background(), project.ID, LicenseInput{
		LicenseNo: strPtr("BL-1001"),
	}); err != nil {
		t.Fatalf("license create failed: %v", err)
	}
	if _, err := contractSvc.Create(context.Background(), project.ID, ContractInput{}); err != nil {
		t.Fatalf("contract create failed: %v", err)
	}

	if _, err := licenseSvc.Update(context.Background(), project.ID, LicenseInput{
		LicenseNo: strPtr("BL-9999"),
	}); err != nil {
		t.Fatalf("license update failed: %v", err)
	}
	contract, err := contractSvc.Update(context.Background(), project.ID, ContractInput{
		TenderNo: strPtr("T-77"),
	})
	if err != nil {
		t.Fatalf("contract update failed: %v", err)
	}
	if contract.LicenseSnapshot.License.LicenseNo != "BL-1001" {
		t.Fatalf("snapshot was rebuilt on update: %+v", contract.LicenseSnapshot.License)
	}
}
