// pkg/physics/filter.go
package physics

import "strings"

// Group is a bitmask of interaction groups a collider can belong to.
type Group uint32

const (
	GroupBall Group = 1 << iota
	GroupVehicleBody
	GroupVehicleWheel
	GroupArena

	GroupNone Group = 0
	GroupAll  Group = GroupBall | GroupVehicleBody | GroupVehicleWheel | GroupArena
)

var groupNames = []struct {
	group Group
	name  string
}{
	{GroupBall, "ball"},
	{GroupVehicleBody, "vehicle-body"},
	{GroupVehicleWheel, "vehicle-wheel"},
	{GroupArena, "arena"},
}

func (g Group) String() string {
	if g == GroupNone {
		return "none"
	}
	var names []string
	for _, n := range groupNames {
		if g&n.group != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// Filter assigns a collider to groups and lists the groups it may touch.
type Filter struct {
	Group Group
	Mask  Group
}

// Collides reports whether two colliders with these filters can generate
// contacts. Both sides must accept each other.
func (f Filter) Collides(other Filter) bool {
	return f.Mask&other.Group != 0 && other.Mask&f.Group != 0
}
