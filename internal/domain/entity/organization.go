package entity

import "time"

// MaxOrganizationNameLength is the longest organization name accepted.
const MaxOrganizationNameLength = 255

// MaxPhoneLength is the longest single phone entry accepted.
const MaxPhoneLength = 50

// Organization is a business located in exactly one building and practicing
// any number of activities.
type Organization struct {
	ID         int64
	Name       string
	Phones     []string // Ordered as supplied at creation.
	BuildingID int64
	CreatedAt  time.Time

	// Building and Activities are attached on every read.
	Building   *Building
	Activities []*Activity
}

// ActivityIDs returns the ids of the attached activities.
func (o *Organization) ActivityIDs() []int64 {
	ids := make([]int64, 0, len(o.Activities))
	for _, activity := range o.Activities {
		ids = append(ids, activity.ID)
	}

	return ids
}
