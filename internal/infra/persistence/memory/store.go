// Package memory implements the repository contracts on top of process memory.
// It backs local runs without a database and end-to-end tests.
package memory

import (
	"context"
	"sync"
	"time"

	"directory/internal/domain/entity"
	"directory/internal/domain/repository"
)

// Store holds every table of the directory in maps guarded by a mutex.
//
// Writes outside a transaction and whole transactions serialize on txMu.
// A transaction works on a private copy of the state that replaces the
// live state only on commit, so readers never see uncommitted rows or ids.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data *state
	now  func() time.Time
}

type state struct {
	nextBuildingID     int64
	nextActivityID     int64
	nextOrganizationID int64

	buildings     map[int64]*entity.Building
	activities    map[int64]*entity.Activity
	organizations map[int64]*entity.Organization
	// links maps an organization id to its activity ids.
	links map[int64]map[int64]struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		data: newState(),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func newState() *state {
	return &state{
		buildings:     make(map[int64]*entity.Building),
		activities:    make(map[int64]*entity.Activity),
		organizations: make(map[int64]*entity.Organization),
		links:         make(map[int64]map[int64]struct{}),
	}
}

func (st *state) clone() *state {
	cloned := &state{
		nextBuildingID:     st.nextBuildingID,
		nextActivityID:     st.nextActivityID,
		nextOrganizationID: st.nextOrganizationID,
		buildings:          make(map[int64]*entity.Building, len(st.buildings)),
		activities:         make(map[int64]*entity.Activity, len(st.activities)),
		organizations:      make(map[int64]*entity.Organization, len(st.organizations)),
		links:              make(map[int64]map[int64]struct{}, len(st.links)),
	}

	for id, building := range st.buildings {
		cloned.buildings[id] = cloneBuilding(building)
	}
	for id, activity := range st.activities {
		cloned.activities[id] = cloneActivity(activity)
	}
	for id, org := range st.organizations {
		cloned.organizations[id] = cloneOrganizationRow(org)
	}
	for orgID, activityIDs := range st.links {
		set := make(map[int64]struct{}, len(activityIDs))
		for activityID := range activityIDs {
			set[activityID] = struct{}{}
		}
		cloned.links[orgID] = set
	}

	return cloned
}

// BuildingRepository returns a non-transactional building repository.
func (s *Store) BuildingRepository() repository.BuildingRepository {
	return &buildingRepository{store: s}
}

// ActivityRepository returns a non-transactional activity repository.
func (s *Store) ActivityRepository() repository.ActivityRepository {
	return &activityRepository{store: s}
}

// OrganizationRepository returns a non-transactional organization repository.
func (s *Store) OrganizationRepository() repository.OrganizationRepository {
	return &organizationRepository{store: s}
}

// TransactionManager returns the store's transaction manager.
func (s *Store) TransactionManager() repository.TransactionManager {
	return &transactionManager{store: s}
}

// DeleteBuilding removes a building together with its organizations and their
// links, mirroring the SQL cascades. It is test support; no API operation deletes.
func (s *Store) DeleteBuilding(ctx context.Context, id int64) error {
	return s.write(ctx, nil, func(st *state) error {
		if _, ok := st.buildings[id]; !ok {
			return repository.ErrBuildingNotFound
		}

		delete(st.buildings, id)
		for orgID, org := range st.organizations {
			if org.BuildingID == id {
				delete(st.organizations, orgID)
				delete(st.links, orgID)
			}
		}

		return nil
	})
}

// DeleteActivity removes an activity, its whole subtree and every link to them,
// mirroring the SQL cascades. It is test support; no API operation deletes.
func (s *Store) DeleteActivity(ctx context.Context, id int64) error {
	return s.write(ctx, nil, func(st *state) error {
		if _, ok := st.activities[id]; !ok {
			return repository.ErrActivityNotFound
		}

		removed := map[int64]struct{}{id: {}}
		for changed := true; changed; {
			changed = false
			for activityID, activity := range st.activities {
				if _, done := removed[activityID]; done || activity.ParentID == nil {
					continue
				}
				if _, parentRemoved := removed[*activity.ParentID]; parentRemoved {
					removed[activityID] = struct{}{}
					changed = true
				}
			}
		}

		for activityID := range removed {
			delete(st.activities, activityID)
			for _, linked := range st.links {
				delete(linked, activityID)
			}
		}

		return nil
	})
}

// read runs fn on the transaction's state when tx is set, else on the
// committed state.
func (s *Store) read(ctx context.Context, tx *state, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tx != nil {
		return fn(tx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.data)
}

// write applies fn to the transaction's state, or to the committed state
// under txMu when no transaction is involved.
func (s *Store) write(ctx context.Context, tx *state, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tx != nil {
		return fn(tx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.data)
}

func cloneBuilding(building *entity.Building) *entity.Building {
	if building == nil {
		return nil
	}
	cloned := *building

	return &cloned
}

func cloneActivity(activity *entity.Activity) *entity.Activity {
	if activity == nil {
		return nil
	}
	cloned := *activity
	cloned.Children = nil
	if activity.ParentID != nil {
		parentID := *activity.ParentID
		cloned.ParentID = &parentID
	}

	return &cloned
}

func cloneOrganizationRow(org *entity.Organization) *entity.Organization {
	cloned := *org
	cloned.Phones = append([]string{}, org.Phones...)
	cloned.Building = nil
	cloned.Activities = nil

	return &cloned
}
