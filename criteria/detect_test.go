package criteria_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
	"github.com/bpetrov2020/info-f420-tilings/criteria"
	"github.com/bpetrov2020/info-f420-tilings/factor"
)

// scenarios pins the end-to-end behavior of the orchestrator: each
// boundary word must be recognized, with the stated criterion winning.
var scenarios = []struct {
	word string
	want factor.Kind
}{
	{"rrddrurddrdllldldluullurrruluu", factor.Translation},
	{"rddrurdruuurdrdrdrdldrddrdllululdddluldluullurrulllllurruuur", factor.HalfTurn},
	{"druuurddrurrddrdlldrrrdlddrdldluldluullurullurulluur", factor.QuarterTurn},
	{"rrrdrdddrurdddddlulddlullldluululuuurururu", factor.TypeOneReflection},
	{"ruuurddrrddldrrrdlddddllluuldddlulluuuuluulurrrurd", factor.TypeTwoReflection},
	{"urrdrrdlddlddldrrrrdldllulldlullurrululurrullururr", factor.TypeOneHalfTurnReflection},
	{"drdrdllddrurddddlllddldluurulluulluurdruurdruulurrur", factor.TypeTwoHalfTurnReflection},
}

func TestDetect_Scenarios(t *testing.T) {
	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.want.String(), func(t *testing.T) {
			w, err := boundary.Parse(sc.word)
			require.NoError(t, err)
			fz, err := criteria.Detect(w)
			require.NoError(t, err)
			require.NotNil(t, fz, "word must be recognized")
			assert.Equal(t, sc.want, fz.Kind)
			assert.NoError(t, fz.Validate(w), "factorization must cover the word")
		})
	}
}

// TestDetect_SmallShapes covers the degenerate translation forms: the
// unit square, the domino and the L-tromino all tile by translation.
func TestDetect_SmallShapes(t *testing.T) {
	for _, word := range []string{"urdl", "rdlu", "rrdllu", "rrdldluu"} {
		w, err := boundary.Parse(word)
		require.NoError(t, err)
		fz, err := criteria.Detect(w)
		require.NoError(t, err)
		require.NotNil(t, fz, "%q must tile by translation", word)
		assert.Equal(t, factor.Translation, fz.Kind)
		assert.NoError(t, fz.Validate(w))
	}
}

func TestDetect_Malformed(t *testing.T) {
	_, err := criteria.Detect("")
	assert.ErrorIs(t, err, boundary.ErrEmptyWord)

	_, err = criteria.Detect("uu")
	assert.ErrorIs(t, err, boundary.ErrTooShort)

	_, err = criteria.Detect("uurr")
	assert.ErrorIs(t, err, boundary.ErrOpenPath)
}

func TestDetect_Options(t *testing.T) {
	_, err := criteria.Detect("urdl", criteria.WithMaxLen(-1))
	assert.ErrorIs(t, err, criteria.ErrOptionViolation)

	_, err = criteria.Detect(boundary.Word(scenarios[0].word), criteria.WithMaxLen(8))
	assert.ErrorIs(t, err, criteria.ErrBoundaryTooLong)

	fz, err := criteria.Detect("urdl", criteria.WithMaxLen(8))
	require.NoError(t, err)
	assert.NotNil(t, fz)
}

// TestDetectAll_ReportsEveryMatch checks the diagnostic entry point on
// a word satisfying several criteria at once.
func TestDetectAll_ReportsEveryMatch(t *testing.T) {
	w := boundary.Word("rrrdrdddrurdddddlulddlullldluululuuurururu")
	all, err := criteria.DetectAll(w)
	require.NoError(t, err)
	kinds := make([]factor.Kind, 0, len(all))
	for _, fz := range all {
		kinds = append(kinds, fz.Kind)
		assert.NoError(t, fz.Validate(w))
	}
	assert.Equal(t, []factor.Kind{
		factor.TypeOneReflection,
		factor.TypeOneHalfTurnReflection,
		factor.HalfTurn,
	}, kinds)
}

// TestDetect_ChainInvariant re-checks the chaining property on every
// scenario factorization: each factor starts right after its
// predecessor's finish, wrapping once around the cycle.
func TestDetect_ChainInvariant(t *testing.T) {
	for _, sc := range scenarios {
		w := boundary.Word(sc.word)
		fz, err := criteria.Detect(w)
		require.NoError(t, err)
		require.NotNil(t, fz)
		n := len(w)
		total := 0
		for i, f := range fz.Factors {
			next := fz.Factors[(i+1)%len(fz.Factors)]
			assert.Equal(t, boundary.Pos(f.Finish+1, n), next.Start)
			total += f.Len()
		}
		assert.Equal(t, n, total)
	}
}
