package spawn

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewTableRejectsNegativeWeight(t *testing.T) {
	_, err := NewTable([]Entry[string]{
		{Weight: 5, Value: "orc"},
		{Weight: -1, Value: "troll"},
	})
	if err == nil {
		t.Fatal("a negative weight is a construction error")
	}
}

func TestNewTableRejectsZeroTotal(t *testing.T) {
	if _, err := NewTable([]Entry[string]{{Weight: 0, Value: "orc"}}); err == nil {
		t.Fatal("a zero total weight is a construction error")
	}
	if _, err := NewTable[string](nil); err == nil {
		t.Fatal("an empty table is a construction error")
	}
}

func TestChoiceRespectsWeights(t *testing.T) {
	table, err := NewTable([]Entry[string]{
		{Weight: 80, Value: "orc"},
		{Weight: 20, Value: "troll"},
	})
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(42))
	const draws = 10000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[table.Choice(rng)]++
	}

	got := float64(counts["orc"]) / draws
	if math.Abs(got-0.8) > 0.02 {
		t.Errorf("orc frequency = %.3f, want ~0.80", got)
	}
	if counts["orc"]+counts["troll"] != draws {
		t.Error("every draw must land on an entry")
	}
}

func TestChoiceSkipsZeroWeightEntries(t *testing.T) {
	table, err := NewTable([]Entry[string]{
		{Weight: 0, Value: "never"},
		{Weight: 10, Value: "always"},
	})
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		if v := table.Choice(rng); v != "always" {
			t.Fatalf("drew %q from a zero-weight entry", v)
		}
	}
}

func TestChoiceSingleEntry(t *testing.T) {
	table, err := NewTable([]Entry[int]{{Weight: 1, Value: 9}})
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	if v := table.Choice(rng); v != 9 {
		t.Fatalf("single-entry table drew %d", v)
	}
}

func TestProgressionValueFor(t *testing.T) {
	p := Progression{{Level: 1, Value: 2}, {Level: 4, Value: 3}, {Level: 6, Value: 5}}

	cases := []struct {
		level, want int
	}{
		{0, 0}, // below the lowest threshold
		{1, 2},
		{3, 2},
		{4, 3},
		{5, 3},
		{6, 5},
		{99, 5},
	}
	for _, c := range cases {
		if got := p.ValueFor(c.level); got != c.want {
			t.Errorf("ValueFor(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestEmptyProgressionIsAlwaysZero(t *testing.T) {
	var p Progression
	if p.ValueFor(5) != 0 {
		t.Fatal("an empty progression yields 0 at every level")
	}
}
