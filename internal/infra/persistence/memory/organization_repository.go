package memory

import (
	"context"
	"maps"
	"slices"
	"strings"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
)

type organizationRepository struct {
	store *Store
	// tx is the private state of the running transaction, nil outside one.
	tx    *state
}

func (repo *organizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	return repo.store.write(ctx, repo.tx, func(st *state) error {
		if _, ok := st.buildings[org.BuildingID]; !ok {
			return domainerrors.ErrBuildingNotFound
		}

		st.nextOrganizationID++
		org.ID = st.nextOrganizationID
		org.CreatedAt = repo.store.now()
		if org.Phones == nil {
			org.Phones = []string{}
		}
		st.organizations[org.ID] = cloneOrganizationRow(org)

		return nil
	})
}

// AttachActivities links all activities or none of them.
func (repo *organizationRepository) AttachActivities(ctx context.Context, organizationID int64, activityIDs []int64) error {
	return repo.store.write(ctx, repo.tx, func(st *state) error {
		if _, ok := st.organizations[organizationID]; !ok {
			return domainerrors.ErrOrganizationNotFound
		}
		for _, activityID := range activityIDs {
			if _, ok := st.activities[activityID]; !ok {
				return domainerrors.ErrReferencedActivityNotFound
			}
		}

		linked, ok := st.links[organizationID]
		if !ok {
			linked = make(map[int64]struct{}, len(activityIDs))
			st.links[organizationID] = linked
		}
		for _, activityID := range activityIDs {
			linked[activityID] = struct{}{}
		}

		return nil
	})
}

func (repo *organizationRepository) FindByID(ctx context.Context, id int64) (*entity.Organization, error) {
	var found *entity.Organization
	err := repo.store.read(ctx, repo.tx, func(st *state) error {
		org, ok := st.organizations[id]
		if !ok {
			return repository.ErrOrganizationNotFound
		}
		found = st.assemble(org)

		return nil
	})

	return found, err
}

func (repo *organizationRepository) FindByBuildingIDs(ctx context.Context, buildingIDs []int64) ([]*entity.Organization, error) {
	buildings := make(map[int64]struct{}, len(buildingIDs))
	for _, id := range buildingIDs {
		buildings[id] = struct{}{}
	}

	return repo.find(ctx, func(_ *state, org *entity.Organization) bool {
		_, ok := buildings[org.BuildingID]
		return ok
	})
}

func (repo *organizationRepository) FindByActivityIDs(ctx context.Context, activityIDs []int64) ([]*entity.Organization, error) {
	activities := make(map[int64]struct{}, len(activityIDs))
	for _, id := range activityIDs {
		activities[id] = struct{}{}
	}

	return repo.find(ctx, func(st *state, org *entity.Organization) bool {
		for activityID := range st.links[org.ID] {
			if _, ok := activities[activityID]; ok {
				return true
			}
		}

		return false
	})
}

// SearchByName compares Unicode-lowercased strings, like ILIKE does.
func (repo *organizationRepository) SearchByName(ctx context.Context, text string) ([]*entity.Organization, error) {
	needle := strings.ToLower(text)

	return repo.find(ctx, func(_ *state, org *entity.Organization) bool {
		return strings.Contains(strings.ToLower(org.Name), needle)
	})
}

func (repo *organizationRepository) find(ctx context.Context, match func(*state, *entity.Organization) bool) ([]*entity.Organization, error) {
	organizations := []*entity.Organization{}
	err := repo.store.read(ctx, repo.tx, func(st *state) error {
		for _, id := range slices.Sorted(maps.Keys(st.organizations)) {
			if org := st.organizations[id]; match(st, org) {
				organizations = append(organizations, st.assemble(org))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return organizations, nil
}

// assemble copies an organization row and attaches its building and activities.
func (st *state) assemble(org *entity.Organization) *entity.Organization {
	assembled := cloneOrganizationRow(org)
	assembled.Building = cloneBuilding(st.buildings[org.BuildingID])

	activityIDs := slices.Sorted(maps.Keys(st.links[org.ID]))
	assembled.Activities = make([]*entity.Activity, 0, len(activityIDs))
	for _, activityID := range activityIDs {
		if activity, ok := st.activities[activityID]; ok {
			assembled.Activities = append(assembled.Activities, cloneActivity(activity))
		}
	}

	return assembled
}
