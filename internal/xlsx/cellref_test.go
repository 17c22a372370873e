package xlsx

import "testing"

func TestColumnLetters_KnownValues(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{28, "AB"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
		{1000, "ALL"},
	}

	for _, c := range cases {
		if got := ColumnLetters(c.index); got != c.want {
			t.Errorf("ColumnLetters(%d) = %q, want %q", c.index, got, c.want)
		}
	}
}

func TestColumnLetters_BijectiveAndOrdered(t *testing.T) {
	seen := make(map[string]int)
	prev := ""

	for i := 1; i <= 1000; i++ {
		label := ColumnLetters(i)
		if label == "" {
			t.Fatalf("ColumnLetters(%d) is empty", i)
		}
		if other, dup := seen[label]; dup {
			t.Fatalf("indexes %d and %d share label %q", other, i, label)
		}
		seen[label] = i

		// Length-then-lexicographic order must be strictly increasing.
		if prev != "" {
			if len(label) < len(prev) || (len(label) == len(prev) && label <= prev) {
				t.Fatalf("label %q (index %d) does not follow %q", label, i, prev)
			}
		}
		prev = label
	}
}

func TestCellRef(t *testing.T) {
	if got := CellRef(1, 1); got != "A1" {
		t.Errorf("CellRef(1,1) = %q, want A1", got)
	}
	if got := CellRef(27, 10); got != "AA10" {
		t.Errorf("CellRef(27,10) = %q, want AA10", got)
	}
}
