// pkg/vehicle/filter.go
package vehicle

import "github.com/opd-ai/go-boink/pkg/physics"

// Collision filters for rig parts. The chassis is the only part that
// touches the ball; no part touches another part of the rig.
var (
	ChassisFilter = physics.Filter{
		Group: physics.GroupVehicleBody,
		Mask:  physics.GroupBall | physics.GroupArena,
	}
	WheelFilter = physics.Filter{
		Group: physics.GroupVehicleWheel,
		Mask:  physics.GroupArena,
	}
)

// FilterFor returns the filter assigned to a role.
func FilterFor(role Role) physics.Filter {
	if role == ChassisBody {
		return ChassisFilter
	}
	return WheelFilter
}
