package discount

import "testing"

func TestResolveExactMatchWins(t *testing.T) {
	table := NewTable(
		Rule{Threshold: 2, Amount: 2000, Exact: true},
		Rule{Threshold: 2, Amount: 9999},
	)
	if got := table.Resolve(2); got != 2000 {
		t.Errorf("Resolve(2) = %d, want exact rule amount 2000", got)
	}
}

func TestResolveOrMorePicksHighestThreshold(t *testing.T) {
	table := NewTable(
		Rule{Threshold: 3, Amount: 4000},
		Rule{Threshold: 5, Amount: 10000},
	)
	if got := table.Resolve(5); got != 10000 {
		t.Errorf("Resolve(5) = %d, want 10000", got)
	}
	if got := table.Resolve(7); got != 10000 {
		t.Errorf("Resolve(7) = %d, want 10000", got)
	}
	if got := table.Resolve(4); got != 4000 {
		t.Errorf("Resolve(4) = %d, want 4000", got)
	}
}

func TestResolveNoMatchIsZero(t *testing.T) {
	table := FallbackQuantity()
	if got := table.Resolve(1); got != 0 {
		t.Errorf("Resolve(1) = %d, want 0", got)
	}
	var nilTable *Table
	if got := nilTable.Resolve(3); got != 0 {
		t.Errorf("nil table Resolve(3) = %d, want 0", got)
	}
}

func TestParseRemoteShape(t *testing.T) {
	table, err := Parse(map[string]int64{
		"2":  2000,
		"3":  4000,
		"5+": 10000,
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := table.Resolve(3); got != 4000 {
		t.Errorf("Resolve(3) = %d, want 4000", got)
	}
	if got := table.Resolve(8); got != 10000 {
		t.Errorf("Resolve(8) = %d, want 10000", got)
	}
	if got := table.Resolve(4); got != 0 {
		t.Errorf("Resolve(4) = %d, want 0 (no rule below 5+ covers 4)", got)
	}
}

func TestParseRejectsMalformedKeys(t *testing.T) {
	if _, err := Parse(map[string]int64{"two": 2000}); err == nil {
		t.Fatal("expected parse error for non-numeric key")
	}
	if _, err := Parse(map[string]int64{"3.5": 2000}); err == nil {
		t.Fatal("expected parse error for fractional key")
	}
}

// The combo discount must never shrink as the bundle grows.
func TestFallbackComboMonotonic(t *testing.T) {
	table := FallbackCombo()
	want := []int64{0, 0, 2000, 4000, 7000, 10000, 10000, 10000}
	prev := int64(0)
	for count := 0; count < len(want); count++ {
		got := table.Resolve(count)
		if got != want[count] {
			t.Errorf("Resolve(%d) = %d, want %d", count, got, want[count])
		}
		if got < prev {
			t.Errorf("discount shrank from %d to %d at count %d", prev, got, count)
		}
		prev = got
	}
}
