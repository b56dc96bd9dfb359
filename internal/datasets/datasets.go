// Package datasets generates small 2D classification datasets for training
// and demos.
//
// Each generator samples N points in the unit square and labels them 0 or 1
// by a geometric rule:
//   - Simple: split by a vertical line
//   - Diag: split by a diagonal line
//   - Split: two vertical bands against the middle
//   - Xor: opposite quadrants
//   - Circle: inside versus outside a centered disk
//   - Spiral: two interleaved spiral arms
//
// The Datasets map exposes the generators by name for command line
// selection.
package datasets

import (
	"math"
	"math/rand"
	"sort"
)

// Graph is a labeled 2D point set.
type Graph struct {
	N int
	X [][2]float64
	Y []int
}

// makePoints samples n points uniformly from the unit square.
func makePoints(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{rand.Float64(), rand.Float64()}
	}
	return pts
}

// Simple labels points 1 left of the vertical line x1 = 0.5.
func Simple(n int) Graph {
	pts := makePoints(n)
	labels := make([]int, n)
	for i, p := range pts {
		if p[0] < 0.5 {
			labels[i] = 1
		}
	}
	return Graph{N: n, X: pts, Y: labels}
}

// Diag labels points 1 below the diagonal x1 + x2 = 0.5.
func Diag(n int) Graph {
	pts := makePoints(n)
	labels := make([]int, n)
	for i, p := range pts {
		if p[0]+p[1] < 0.5 {
			labels[i] = 1
		}
	}
	return Graph{N: n, X: pts, Y: labels}
}

// Split labels points 1 in the outer vertical bands x1 < 0.2 or x1 > 0.8.
func Split(n int) Graph {
	pts := makePoints(n)
	labels := make([]int, n)
	for i, p := range pts {
		if p[0] < 0.2 || p[0] > 0.8 {
			labels[i] = 1
		}
	}
	return Graph{N: n, X: pts, Y: labels}
}

// Xor labels points 1 in the upper-left and lower-right quadrants.
func Xor(n int) Graph {
	pts := makePoints(n)
	labels := make([]int, n)
	for i, p := range pts {
		if (p[0] < 0.5 && p[1] > 0.5) || (p[0] > 0.5 && p[1] < 0.5) {
			labels[i] = 1
		}
	}
	return Graph{N: n, X: pts, Y: labels}
}

// Circle labels points 1 outside a disk of squared radius 0.1 centered in
// the square.
func Circle(n int) Graph {
	pts := makePoints(n)
	labels := make([]int, n)
	for i, p := range pts {
		x1, x2 := p[0]-0.5, p[1]-0.5
		if x1*x1+x2*x2 > 0.1 {
			labels[i] = 1
		}
	}
	return Graph{N: n, X: pts, Y: labels}
}

// Spiral generates two interleaved spiral arms of n/2 points each, the
// first labeled 0 and the second labeled 1.
func Spiral(n int) Graph {
	x := func(t float64) float64 { return t * math.Cos(t) / 20.0 }
	y := func(t float64) float64 { return t * math.Sin(t) / 20.0 }

	pts := make([][2]float64, 0, n)
	for i := 5; i < 5+n/2; i++ {
		t := 10.0 * float64(i) / float64(n)
		pts = append(pts, [2]float64{x(t) + 0.5, y(t) + 0.5})
	}
	for i := 5; i < 5+n/2; i++ {
		t := -10.0 * float64(i) / float64(n)
		pts = append(pts, [2]float64{y(t) + 0.5, x(t) + 0.5})
	}

	labels := make([]int, len(pts))
	for i := n / 2; i < len(pts); i++ {
		labels[i] = 1
	}
	return Graph{N: len(pts), X: pts, Y: labels}
}

// Datasets maps dataset names to their generators.
var Datasets = map[string]func(int) Graph{
	"Simple": Simple,
	"Diag":   Diag,
	"Split":  Split,
	"Xor":    Xor,
	"Circle": Circle,
	"Spiral": Spiral,
}

// Names returns the available dataset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Datasets))
	for name := range Datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
