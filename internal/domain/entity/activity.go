package entity

import "time"

const (
	// RootActivityLevel is the level of an activity without a parent.
	RootActivityLevel = 1
	// MaxActivityLevel is the deepest level an activity may sit at.
	MaxActivityLevel = 3
	// MaxActivityNameLength is the longest activity name accepted.
	MaxActivityNameLength = 255
)

// Activity is a node in the business activity taxonomy.
// Activities form a forest: roots have no parent and level 1,
// every child sits exactly one level below its parent.
type Activity struct {
	ID        int64
	Name      string
	Level     int
	ParentID  *int64
	CreatedAt time.Time

	// Children is only populated by tree reads.
	Children []*Activity
}

// IsRoot reports whether the activity has no parent.
func (a *Activity) IsRoot() bool {
	return a.ParentID == nil
}

// CanHaveChildren reports whether a child may be attached below this activity.
func (a *Activity) CanHaveChildren() bool {
	return a.Level < MaxActivityLevel
}

// ChildLevel returns the level a new child of this activity would get.
func (a *Activity) ChildLevel() int {
	return a.Level + 1
}
