package service

import (
	"testing"

	"github.com/omran/construction-projects/internal/model"
)

func TestDeriveDisplayName(t *testing.T) {
	cases := []struct {
		name   string
		owners []model.SitePlanOwner
		want   string
	}{
		{
			name:   "no owners falls back",
			owners: nil,
			want:   "Project #7",
		},
		{
			name: "unnamed owners fall back",
			owners: []model.SitePlanOwner{
				{Nationality: "UAE"},
			},
			want: "Project #7",
		},
		{
			name: "single owner arabic name",
			owners: []model.SitePlanOwner{
				{OwnerNameAR: "محمد الهاشمي", OwnerNameEN: "Mohamed Alhashimi"},
			},
			want: "محمد الهاشمي",
		},
		{
			name: "english name when arabic missing",
			owners: []model.SitePlanOwner{
				{OwnerNameEN: "Mohamed Alhashimi"},
			},
			want: "Mohamed Alhashimi",
		},
		{
			name: "two owners get partners suffix",
			owners: []model.SitePlanOwner{
				{OwnerNameAR: "محمد الهاشمي"},
				{OwnerNameAR: "سالم النعيمي"},
			},
			want: "محمد الهاشمي وشركاؤه",
		},
		{
			name: "first owner picked by id order",
			owners: func() []model.SitePlanOwner {
				first := model.SitePlanOwner{OwnerNameAR: "محمد الهاشمي"}
				first.ID = 2
				second := model.SitePlanOwner{OwnerNameAR: "سالم النعيمي"}
				second.ID = 1
				return []model.SitePlanOwner{first, second}
			}(),
			want: "سالم النعيمي وشركاؤه",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveDisplayName(7, tc.owners)
			if got != tc.want {
				t.Fatalf("DeriveDisplayName = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	cases := []struct {
		name                                 string
		projectID                            uint
		hasSitePlan, hasLicense, hasContract bool
		want                                 int
	}{
		{name: "no identity", projectID: 0, hasSitePlan: true, hasLicense: true, hasContract: true, want: 0},
		{name: "nothing done", projectID: 1, want: 0},
		{name: "one stage", projectID: 1, hasSitePlan: true, want: 33},
		{name: "two stages", projectID: 1, hasSitePlan: true, hasLicense: true, want: 67},
		{name: "all stages", projectID: 1, hasSitePlan: true, hasLicense: true, hasContract: true, want: 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Completion(tc.projectID, tc.hasSitePlan, tc.hasLicense, tc.hasContract)
			if got != tc.want {
				t.Fatalf("Completion = %d, want %d", got, tc.want)
			}
		})
	}
}
