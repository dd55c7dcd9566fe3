package eui

import (
	"fmt"
	"sync"
)

// Stops are the conventional design-scale levels, lightest first.
var Stops = [...]float32{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// FixedRoles lists the eight roles every theme defines, in declaration order.
var FixedRoles = [...]Role{
	RolePrimary,
	RoleSecondary,
	RoleTertiary,
	RoleInfo,
	RoleWarning,
	RoleSuccess,
	RoleError,
	RoleSurface,
}

// At builds the selector for a fixed role at the given stop. Custom and
// unique selectors need a name or pair and must use their constructors.
func (r Role) At(stop float32) ThemeColor {
	if !r.Fixed() {
		panic(fmt.Sprintf("eui: Role.At on non-fixed role %v", r))
	}
	return ThemeColor{role: r, shade: stop}
}

var (
	stopTable     [len(FixedRoles)][len(Stops)]ThemeColor
	stopTableOnce sync.Once
)

// StopTable returns every fixed role at every conventional stop.
func StopTable() [len(FixedRoles)][len(Stops)]ThemeColor {
	stopTableOnce.Do(func() {
		for i, r := range FixedRoles {
			for j, s := range Stops {
				stopTable[i][j] = r.At(s)
			}
		}
	})
	return stopTable
}

// StopSelector returns the table entry for role at stop. ok is false when the
// role is not fixed or the stop is not one of Stops.
func StopSelector(role Role, stop float32) (ThemeColor, bool) {
	if !role.Fixed() {
		return ThemeColor{}, false
	}
	for j, s := range Stops {
		if s == stop {
			return StopTable()[role-RolePrimary][j], true
		}
	}
	return ThemeColor{}, false
}
