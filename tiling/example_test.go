package tiling_test

import (
	"fmt"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
	"github.com/bpetrov2020/info-f420-tilings/criteria"
	"github.com/bpetrov2020/info-f420-tilings/isometry"
	"github.com/bpetrov2020/info-f420-tilings/tiling"
)

// ExampleGenerate runs the full pipeline on the unit square: detect the
// criterion, build the neighbor transforms, and grow the tiling inside
// a small window.
func ExampleGenerate() {
	w, _ := boundary.Parse("urdl")
	fz, _ := criteria.Detect(w)
	ts, _ := isometry.Build(w, fz)

	tiles, _ := tiling.Generate(isometry.Seed(w), ts, tiling.WithWindow(5, 5))
	fmt.Println(fz.Kind, len(tiles))
	// Output:
	// Translation 36
}
