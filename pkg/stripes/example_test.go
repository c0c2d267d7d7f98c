package stripes_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/datastripes/pkg/raster"
	"github.com/matzehuels/datastripes/pkg/series"
	"github.com/matzehuels/datastripes/pkg/stripes"
)

func ExampleBuildBar() {
	cfg := stripes.DefaultConfig()
	s, err := series.Parse(strings.NewReader("desc\n2\n1.0\n0.0\n"), "example.txt")
	if err != nil {
		panic(err)
	}

	bar, err := stripes.BuildBar(cfg, s, raster.NewAllocator())
	if err != nil {
		panic(err)
	}
	fmt.Printf("bar: %dx%d\n", bar.Width(), bar.Height())
	fmt.Printf("left: %+v\n", bar.At(0, 0))
	fmt.Printf("right: %+v\n", bar.At(1099, 0))
	// Output:
	// bar: 1100x200
	// left: {R:255 G:0 B:127}
	// right: {R:0 G:255 B:127}
}

func ExampleDivisibleWidth() {
	w, _ := stripes.DivisibleWidth(1100, 3)
	fmt.Println(w)
	// Output: 1098
}
