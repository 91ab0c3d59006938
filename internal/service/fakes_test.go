package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/omran/construction-projects/internal/model"
)

// memStore backs the fake repositories used by the service tests. All
// record sets are keyed the way the real schema is: site plans, licenses,
// contracts and awardings by project ID, owner rows by site plan ID.
type memStore struct {
	projects  map[uint]*model.Project
	plans     map[uint]*model.SitePlan
	owners    map[uint][]model.SitePlanOwner
	licenses  map[uint]*model.BuildingLicense
	contracts map[uint]*model.Contract
	awardings map[uint]*model.Awarding
	nextID    uint
}

func newMemStore() *memStore {
	return &memStore{
		projects:  map[uint]*model.Project{},
		plans:     map[uint]*model.SitePlan{},
		owners:    map[uint][]model.SitePlanOwner{},
		licenses:  map[uint]*model.BuildingLicense{},
		contracts: map[uint]*model.Contract{},
		awardings: map[uint]*model.Awarding{},
	}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) addProject(name string) *model.Project {
	project := &model.Project{
		Name:   name,
		Type:   model.ProjectTypeResidential,
		Status: model.ProjectStatusDraft,
	}
	project.ID = m.id()
	project.DisplayName = fmt.Sprintf("Project #%d", project.ID)
	m.projects[project.ID] = project
	return project
}

type fakeProjects struct{ store *memStore }

func (f *fakeProjects) Create(_ context.Context, project *model.Project) error {
	project.ID = f.store.id()
	copied := *project
	f.store.projects[project.ID] = &copied
	return nil
}

func (f *fakeProjects) Get(_ context.Context, id uint) (*model.Project, error) {
	project, ok := f.store.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *project
	return &copied, nil
}

func (f *fakeProjects) List(_ context.Context) ([]model.Project, error) {
	ids := make([]uint, 0, len(f.store.projects))
	for id := range f.store.projects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	projects := make([]model.Project, 0, len(ids))
	for _, id := range ids {
		projects = append(projects, *f.store.projects[id])
	}
	return projects, nil
}

func (f *fakeProjects) Save(_ context.Context, project *model.Project) error {
	if _, ok := f.store.projects[project.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *project
	f.store.projects[project.ID] = &copied
	return nil
}

func (f *fakeProjects) Delete(_ context.Context, id uint) error {
	delete(f.store.projects, id)
	return nil
}

func (f *fakeProjects) SetDisplayName(_ context.Context, id uint, name string) error {
	project, ok := f.store.projects[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	project.DisplayName = name
	return nil
}

func (f *fakeProjects) StageFlags(_ context.Context, id uint) (StageFlags, error) {
	if id == 0 {
		return StageFlags{}, nil
	}
	_, hasPlan := f.store.plans[id]
	_, hasLicense := f.store.licenses[id]
	_, hasContract := f.store.contracts[id]
	_, hasAwarding := f.store.awardings[id]
	return StageFlags{
		HasSitePlan: hasPlan,
		HasLicense:  hasLicense,
		HasContract: hasContract,
		HasAwarding: hasAwarding,
	}, nil
}

type fakePlans struct{ store *memStore }

func (f *fakePlans) Create(_ context.Context, plan *model.SitePlan, owners []model.SitePlanOwner) error {
	if _, ok := f.store.plans[plan.ProjectID]; ok {
		return gorm.ErrDuplicatedKey
	}
	plan.ID = f.store.id()
	copied := *plan
	f.store.plans[plan.ProjectID] = &copied
	rows := make([]model.SitePlanOwner, 0, len(owners))
	for _, owner := range owners {
		owner.ID = f.store.id()
		owner.SitePlanID = plan.ID
		rows = append(rows, owner)
	}
	f.store.owners[plan.ID] = rows
	return nil
}

func (f *fakePlans) GetByProject(_ context.Context, projectID uint) (*model.SitePlan, error) {
	plan, ok := f.store.plans[projectID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *plan
	return &copied, nil
}

func (f *fakePlans) Save(_ context.Context, plan *model.SitePlan) error {
	if _, ok := f.store.plans[plan.ProjectID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *plan
	f.store.plans[plan.ProjectID] = &copied
	return nil
}

func (f *fakePlans) DeleteByProject(_ context.Context, projectID uint) error {
	if plan, ok := f.store.plans[projectID]; ok {
		delete(f.store.owners, plan.ID)
	}
	delete(f.store.plans, projectID)
	return nil
}

func (f *fakePlans) ListOwners(_ context.Context, sitePlanID uint) ([]model.SitePlanOwner, error) {
	rows := f.store.owners[sitePlanID]
	result := make([]model.SitePlanOwner, len(rows))
	copy(result, rows)
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakePlans) ReplaceOwners(_ context.Context, sitePlanID uint, owners []model.SitePlanOwner) error {
	rows := make([]model.SitePlanOwner, 0, len(owners))
	for _, owner := range owners {
		owner.ID = f.store.id()
		owner.SitePlanID = sitePlanID
		rows = append(rows, owner)
	}
	f.store.owners[sitePlanID] = rows
	return nil
}

type fakeLicenses struct{ store *memStore }

func (f *fakeLicenses) Create(_ context.Context, license *model.BuildingLicense) error {
	if _, ok := f.store.licenses[license.ProjectID]; ok {
		return gorm.ErrDuplicatedKey
	}
	license.ID = f.store.id()
	copied := *license
	f.store.licenses[license.ProjectID] = &copied
	return nil
}

func (f *fakeLicenses) GetByProject(_ context.Context, projectID uint) (*model.BuildingLicense, error) {
	license, ok := f.store.licenses[projectID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *license
	return &copied, nil
}

func (f *fakeLicenses) Save(_ context.Context, license *model.BuildingLicense) error {
	if _, ok := f.store.licenses[license.ProjectID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *license
	f.store.licenses[license.ProjectID] = &copied
	return nil
}

func (f *fakeLicenses) DeleteByProject(_ context.Context, projectID uint) error {
	delete(f.store.licenses, projectID)
	return nil
}

func (f *fakeLicenses) SetSitePlanSnapshot(_ context.Context, id uint, snapshot model.SitePlanSnapshot) error {
	for _, license := range f.store.licenses {
		if license.ID == id {
			license.SitePlanSnapshot = snapshot
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeContracts struct{ store *memStore }

func (f *fakeContracts) Create(_ context.Context, contract *model.Contract) error {
	if _, ok := f.store.contracts[contract.ProjectID]; ok {
		return gorm.ErrDuplicatedKey
	}
	contract.ID = f.store.id()
	copied := *contract
	f.store.contracts[contract.ProjectID] = &copied
	return nil
}

func (f *fakeContracts) GetByProject(_ context.Context, projectID uint) (*model.Contract, error) {
	contract, ok := f.store.contracts[projectID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *contract
	return &copied, nil
}

func (f *fakeContracts) Save(_ context.Context, contract *model.Contract) error {
	if _, ok := f.store.contracts[contract.ProjectID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *contract
	f.store.contracts[contract.ProjectID] = &copied
	return nil
}

func (f *fakeContracts) DeleteByProject(_ context.Context, projectID uint) error {
	delete(f.store.contracts, projectID)
	return nil
}

type fakeAwardings struct{ store *memStore }

func (f *fakeAwardings) Create(_ context.Context, awarding *model.Awarding) error {
	if _, ok := f.store.awardings[awarding.ProjectID]; ok {
		return gorm.ErrDuplicatedKey
	}
	awarding.ID = f.store.id()
	copied := *awarding
	f.store.awardings[awarding.ProjectID] = &copied
	return nil
}

func (f *fakeAwardings) GetByProject(_ context.Context, projectID uint) (*model.Awarding, error) {
	awarding, ok := f.store.awardings[projectID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *awarding
	return &copied, nil
}

func (f *fakeAwardings) Save(_ context.Context, awarding *model.Awarding) error {
	if _, ok := f.store.awardings[awarding.ProjectID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *awarding
	f.store.awardings[awarding.ProjectID] = &copied
	return nil
}

func (f *fakeAwardings) DeleteByProject(_ context.Context, projectID uint) error {
	delete(f.store.awardings, projectID)
	return nil
}

type fakeFiles struct{ urls map[uint]string }

func (f *fakeFiles) URLFor(_ context.Context, fileID uint) *string {
	url, ok := f.urls[fileID]
	if !ok {
		return nil
	}
	return &url
}

func strPtr(s string) *string { return &s }

func floatPtr(v float64) *float64 { return &v }
