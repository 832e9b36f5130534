package mandel

import (
	"fmt"
	"sort"
	"strings"
)

// Region is a named rectangular window onto the complex plane, without a
// pixel resolution attached. Combine one with a resolution via Viewport.
type Region struct {
	RealMin, RealMax float64
	ImagMin, ImagMax float64
}

// Classic regions / landmarks in the Mandelbrot set.
var (
	// Overview: the whole set with its main cardioid and period bulbs.
	Overview = Region{
		RealMin: -2.0,
		RealMax: 0.5,
		ImagMin: -1.25,
		ImagMax: 1.25,
	}

	// Seahorse Valley: dense filaments and repeating seahorse curls.
	SeahorseValley = Region{
		RealMin: -0.8,
		RealMax: -0.7,
		ImagMin: 0.05,
		ImagMax: 0.15,
	}

	// Elephant Valley: large bulb with trunk-like tendrils.
	ElephantValley = Region{
		RealMin: -1.85,
		RealMax: -1.75,
		ImagMin: -0.10,
		ImagMax: -0.02,
	}

	// Spiral Minibrot: small Mandelbrot copy with tight spiral arms.
	SpiralMinibrot = Region{
		RealMin: -0.7435,
		RealMax: -0.7420,
		ImagMin: 0.1310,
		ImagMax: 0.1325,
	}

	// Triple Spiral: threefold symmetric spiral structure.
	TripleSpiral = Region{
		RealMin: -0.7480,
		RealMax: -0.7450,
		ImagMin: 0.0950,
		ImagMax: 0.0980,
	}

	// Valley of the Dragon: deep, highly detailed spiral filaments.
	ValleyOfTheDragon = Region{
		RealMin: -0.7400,
		RealMax: -0.7350,
		ImagMin: 0.1800,
		ImagMax: 0.1850,
	}

	// Minibrot in a Mini-Spiral: self-similar copy inside a spiral arm.
	MinibrotInMiniSpiral = Region{
		RealMin: -1.7390,
		RealMax: -1.7375,
		ImagMin: -0.0235,
		ImagMax: -0.0220,
	}

	// Antenna Minibrot: small copy on the antenna of the period-3 bulb.
	// Needs a high iteration cap (8192 or more) to resolve.
	AntennaMinibrot = Region{
		RealMin: -0.178,
		RealMax: -0.148,
		ImagMin: -1.0409375,
		ImagMax: -1.0240625,
	}
)

// namedRegions maps lookup names to the landmark catalog.
var namedRegions = map[string]Region{
	"overview":         Overview,
	"seahorse":         SeahorseValley,
	"elephant":         ElephantValley,
	"spiral-minibrot":  SpiralMinibrot,
	"triple-spiral":    TripleSpiral,
	"dragon-valley":    ValleyOfTheDragon,
	"mini-spiral":      MinibrotInMiniSpiral,
	"antenna-minibrot": AntennaMinibrot,
}

// LookupRegion returns the landmark region registered under name.
// Lookup is case-insensitive. It returns an error naming the valid
// choices when name is unknown.
func LookupRegion(name string) (Region, error) {
	r, ok := namedRegions[strings.ToLower(name)]
	if !ok {
		return Region{}, fmt.Errorf("mandel: unknown region %q (valid: %s)",
			name, strings.Join(RegionNames(), ", "))
	}
	return r, nil
}

// RegionNames returns the names accepted by LookupRegion.
// The list is sorted alphabetically for consistent output.
func RegionNames() []string {
	names := make([]string, 0, len(namedRegions))
	for name := range namedRegions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Viewport attaches a pixel resolution to the region.
func (r Region) Viewport(width, height int) (Viewport, error) {
	return NewViewport(r.RealMin, r.RealMax, r.ImagMin, r.ImagMax, width, height)
}

// Center returns the midpoint of the region.
func (r Region) Center() (re, im float64) {
	return (r.RealMin + r.RealMax) / 2, (r.ImagMin + r.ImagMax) / 2
}

// Extent returns the span of the region along each axis.
func (r Region) Extent() (re, im float64) {
	return r.RealMax - r.RealMin, r.ImagMax - r.ImagMin
}
