package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Stage labels used in conflict messages. The message format is fixed:
// clients match on "<stage> already exists for this project".
const (
	stageSitePlan = "site plan"
	stageLicense  = "building license"
	stageContract = "contract"
	stageAwarding = "awarding"
)

func stageConflict(stage string) error {
	return fmt.Errorf("%w: %s already exists for this project", ErrConflict, stage)
}

// mapStageCreateErr turns a store-level uniqueness violation into the same
// conflict the existence check reports. The existence check is not atomic;
// the unique index on project_id is the final arbiter when two creates race.
func mapStageCreateErr(err error, stage string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return stageConflict(stage)
	}
	return err
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
