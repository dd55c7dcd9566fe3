package eui

import "testing"

func TestStopTable(t *testing.T) {
	table := StopTable()
	for i, r := range FixedRoles {
		for j, s := range Stops {
			sel := table[i][j]
			if sel.Role() != r || sel.Shade() != s {
				t.Fatalf("table[%d][%d] = %v, want %v-%v", i, j, sel, r, s)
			}
			got, ok := StopSelector(r, s)
			if !ok || !got.Equal(sel) {
				t.Fatalf("StopSelector(%v, %v) = %v, %v", r, s, got, ok)
			}
		}
	}
	if table[0][0].String() != "primary-50" || table[7][9].String() != "surface-900" {
		t.Fatalf("table corners = %v, %v", table[0][0], table[7][9])
	}
}

func TestStopSelectorMisses(t *testing.T) {
	if _, ok := StopSelector(RolePrimary, 550); ok {
		t.Fatalf("550 is not a stop")
	}
	if _, ok := StopSelector(RoleCustom, 500); ok {
		t.Fatalf("custom role has no table row")
	}
}

func TestRoleAtPanicsOnCustom(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	RoleCustom.At(500)
}
