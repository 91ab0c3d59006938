package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/omran/construction-projects/internal/model"
)

// partnersSuffix is appended to the main owner name when a site plan lists
// more than one owner ("and his partners").
const partnersSuffix = "وشركاؤه"

// DeriveDisplayName computes a project's display name from its site plan
// owner list. The first owner (by ID ascending) with a non-empty Arabic or
// English name supplies the main name, Arabic preferred. With two or more
// owners the partners suffix is appended. Without a named owner the name
// falls back to a synthetic label built from the project ID.
func DeriveDisplayName(projectID uint, owners []model.SitePlanOwner) string {
	ordered := make([]model.SitePlanOwner, len(owners))
	copy(ordered, owners)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	main := ""
	for _, owner := range ordered {
		if owner.OwnerNameAR != "" {
			main = owner.OwnerNameAR
			break
		}
		if owner.OwnerNameEN != "" {
			main = owner.OwnerNameEN
			break
		}
	}
	if main == "" {
		return fallbackDisplayName(projectID)
	}
	if len(ordered) > 1 {
		return main + " " + partnersSuffix
	}
	return main
}

func fallbackDisplayName(projectID uint) string {
	return fmt.Sprintf("Project #%d", projectID)
}

// Completion is the project completion percentage over the three snapshot
// stages. A project without identity is always 0.
func Completion(projectID uint, hasSitePlan, hasLicense, hasContract bool) int {
	if projectID == 0 {
		return 0
	}
	done := 0
	for _, has := range []bool{hasSitePlan, hasLicense, hasContract} {
		if has {
			done++
		}
	}
	return int(math.Round(float64(done) / 3 * 100))
}
