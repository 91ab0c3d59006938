package service

import (
	"context"
	"errors"
	"testing"
)

func newAwardingFixture() (*AwardingService, *memStore) {
	store := newMemStore()
	return NewAwardingService(&fakeProjects{store}, &fakeAwardings{store}), store
}

func TestAwardingCreateAndConflict(t *testing.T) {
	svc, store := newAwardingFixture()
	project := store.addProject("سكني")

	awarding, err := svc.Create(context.Background(), project.ID, AwardingInput{
		ProjectNumber: strPtr("PN-300"),
		AwardDate:     strPtr("2024-05-20"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if awarding.ProjectNumber != "PN-300" {
		t.Fatalf("project number = %q", awarding.ProjectNumber)
	}
	if awarding.AwardDate == nil || awarding.AwardDate.Format("2006-01-02") != "2024-05-20" {
		t.Fatalf("award date = %v", awarding.AwardDate)
	}

	_, err = svc.Create(context.Background(), project.ID, AwardingInput{})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("second create error = %v, want ErrConflict", err)
	}
}

func TestAwardingMissingProject(t *testing.T) {
	svc, _ := newAwardingFixture()
	_, err := svc.Create(context.Background(), 42, AwardingInput{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestAwardingUpdateAndDelete(t *testing.T) {
	svc, store := newAwardingFixture()
	project := store.addProject("سكني")

	if _, err := svc.Create(context.Background(), project.ID, AwardingInput{
		ProjectNumber: strPtr("PN-300"),
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	awarding, err := svc.Update(context.Background(), project.ID, AwardingInput{
		ContractorRegistration: strPtr("CR-18"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if awarding.ProjectNumber != "PN-300" || awarding.ContractorRegistration != "CR-18" {
		t.Fatalf("partial update mismatch: %+v", awarding)
	}

	if err := svc.Delete(context.Background(), project.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), project.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete error = %v, want ErrNotFound", err)
	}
}
