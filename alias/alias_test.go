package alias

import "testing"

func TestResolveIsSingleLevel(t *testing.T) {
	tbl := NewTable()
	tbl.Set("master", "slave")
	tbl.Set("slave", "deeper")

	if got := tbl.Resolve("slave"); got != "master" {
		t.Errorf("Resolve(slave) = %q, want master", got)
	}
	// One hop only: deeper -> slave, never deeper -> master.
	if got := tbl.Resolve("deeper"); got != "slave" {
		t.Errorf("Resolve(deeper) = %q, want slave", got)
	}
	if got := tbl.Resolve("unknown"); got != "unknown" {
		t.Errorf("Resolve(unknown) = %q, want unknown", got)
	}
}

func TestSetReportsReplacement(t *testing.T) {
	tbl := NewTable()
	if tbl.Set("ann", "smurf") {
		t.Error("first Set reported a replacement")
	}
	if !tbl.Set("bob", "smurf") {
		t.Error("re-mapping an existing slave reported a fresh add")
	}
	if got := tbl.Resolve("smurf"); got != "bob" {
		t.Errorf("Resolve(smurf) = %q, want bob", got)
	}
}

func TestDelete(t *testing.T) {
	tbl := NewTable()
	tbl.Set("ann", "smurf")
	if !tbl.Delete("smurf") {
		t.Error("Delete of existing alias reported miss")
	}
	if tbl.Delete("smurf") {
		t.Error("second Delete reported a hit")
	}
	if got := tbl.Resolve("smurf"); got != "smurf" {
		t.Errorf("Resolve after delete = %q, want smurf", got)
	}
}

func TestSlavesSorted(t *testing.T) {
	tbl := NewTable()
	tbl.Set("m", "zed")
	tbl.Set("m", "ann")
	tbl.Set("m", "kim")

	got := tbl.Slaves()
	want := []string{"ann", "kim", "zed"}
	if len(got) != len(want) {
		t.Fatalf("Slaves() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slaves() = %v, want %v", got, want)
		}
	}
	if tbl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tbl.Len())
	}
}
