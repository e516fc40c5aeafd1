package isometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
	"github.com/bpetrov2020/info-f420-tilings/criteria"
	"github.com/bpetrov2020/info-f420-tilings/factor"
	"github.com/bpetrov2020/info-f420-tilings/isometry"
)

// doubledArea returns twice the signed shoelace area of p. Positive for
// clockwise traversal under the screen-down y-axis.
func doubledArea(p isometry.Polygon) int {
	s := 0
	for i := range p {
		q := p[(i+1)%len(p)]
		s += p[i].X*q.Y - q.X*p[i].Y
	}
	return s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestBuild_UnitSquare(t *testing.T) {
	w := boundary.Word("urdl")
	fz, err := criteria.Detect(w)
	require.NoError(t, err)
	require.Equal(t, factor.Translation, fz.Kind)

	ts, err := isometry.Build(w, fz)
	require.NoError(t, err)
	require.Len(t, ts, 6)

	got := make(map[boundary.Point]bool, 6)
	for _, tr := range ts {
		assert.Equal(t, isometry.OpTranslate, tr.Op)
		got[tr.Translate] = true
	}
	// The hexagonal neighbor set of the square under the basis u=(1,−1), v=(1,0).
	want := []boundary.Point{
		{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1},
		{X: -1, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1},
	}
	for _, v := range want {
		assert.True(t, got[v], "missing neighbor vector %v", v)
	}
}

// TestBuild_Scenarios applies every emitted transform to the seed of
// each scenario word and checks the isometry contract: equal area,
// a moved polygon, and the expected transform count per criterion.
func TestBuild_Scenarios(t *testing.T) {
	cases := []struct {
		word  string
		count int
	}{
		{"rrddrurddrdllldldluullurrruluu", 6},                           // translation
		{"rddrurdruuurdrdrdrdldrddrdllululdddluldluullurrulllllurruuur", 6}, // half-turn
		{"druuurddrurrddrdlldrrrdlddrdldluldluullurullurulluur", 5},     // quarter-turn, palindromic A
		{"rrrdrdddrurdddddlulddlullldluululuuurururu", 6},               // type-1 reflection
		{"ruuurddrrddldrrrdlddddllluuldddlulluuuuluulurrrurd", 6},       // type-2 reflection
		{"urrdrrdlddlddldrrrrdldllulldlullurrululurrullururr", 6},       // type-1 half-turn-reflection
		{"drdrdllddrurddddlllddldluurulluulluurdruurdruulurrur", 6},     // type-2 half-turn-reflection
	}
	for _, c := range cases {
		w, err := boundary.Parse(c.word)
		require.NoError(t, err)
		fz, err := criteria.Detect(w)
		require.NoError(t, err)
		require.NotNil(t, fz)

		ts, err := isometry.Build(w, fz)
		require.NoError(t, err, "kind %v", fz.Kind)
		assert.Len(t, ts, c.count, "kind %v", fz.Kind)

		seed := isometry.Seed(w)
		area := abs(doubledArea(seed))
		for i, tr := range ts {
			moved := tr.Apply(seed)
			assert.Equal(t, area, abs(doubledArea(moved)), "kind %v transform %d must preserve area", fz.Kind, i)
			assert.False(t, moved.Equal(seed), "kind %v transform %d must move the seed", fz.Kind, i)
		}
	}
}

func TestBuild_Invariants(t *testing.T) {
	w := boundary.Word("urdl")

	_, err := isometry.Build(w, nil)
	assert.ErrorIs(t, err, isometry.ErrInvariant)

	// A half-turn factorization needs six factors.
	bad := &factor.Factorization{
		Kind:    factor.HalfTurn,
		Factors: []factor.Factor{factor.New(w, 1, 2), factor.New(w, 3, 2)},
	}
	_, err = isometry.Build(w, bad)
	assert.ErrorIs(t, err, isometry.ErrInvariant)

	// A broken chain is rejected before any geometry runs.
	torn := &factor.Factorization{
		Kind:    factor.Translation,
		Factors: []factor.Factor{factor.New(w, 1, 2), factor.New(w, 4, 2)},
	}
	_, err = isometry.Build(w, torn)
	assert.ErrorIs(t, err, isometry.ErrInvariant)
}
