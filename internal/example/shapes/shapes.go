// Package shapes checks for collisions between flat shapes
// held in a World.
package shapes

import (
	"errors"
	"fmt"

	"github.com/rogpeppe/hetvec"
)

//go:generate go run github.com/rogpeppe/hetvec/cmd/hetvecgen

// Point is a point in the plane.
type Point struct {
	X, Y float64
}

// Sphere is a circle around a center point.
type Sphere struct {
	Name   string
	Center Point
	R      float64
}

// Box is an axis-aligned rectangle with its lowest corner at Min.
type Box struct {
	Name string
	Min  Point
	W, H float64
}

// Triangle is a triangle with corners Pts.
type Triangle struct {
	Name string
	Pts  [3]Point
}

// bounds returns the bounding box of t.
func (t Triangle) bounds() Box {
	b := Box{
		Name: t.Name,
		Min:  t.Pts[0],
	}
	hi := t.Pts[0]
	for _, p := range t.Pts[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	b.W = hi.X - b.Min.X
	b.H = hi.Y - b.Min.Y
	return b
}

func spheresOverlap(a, b Sphere) bool {
	dx, dy := a.Center.X-b.Center.X, a.Center.Y-b.Center.Y
	r := a.R + b.R
	return dx*dx+dy*dy <= r*r
}

func sphereBoxOverlap(s Sphere, b Box) bool {
	// Distance from the center to the nearest point of the box.
	dx := s.Center.X - clamp(s.Center.X, b.Min.X, b.Min.X+b.W)
	dy := s.Center.Y - clamp(s.Center.Y, b.Min.Y, b.Min.Y+b.H)
	return dx*dx+dy*dy <= s.R*s.R
}

func boxesOverlap(a, b Box) bool {
	return a.Min.X <= b.Min.X+b.W && b.Min.X <= a.Min.X+a.W &&
		a.Min.Y <= b.Min.Y+b.H && b.Min.Y <= a.Min.Y+a.H
}

func clamp(x, lo, hi float64) float64 {
	return max(lo, min(x, hi))
}

// ErrTooManyHits is returned by World.Collide when a
// Collider's limit is reached.
var ErrTooManyHits = errors.New("too many hits")

// Collider records colliding pairs of spheres and boxes.
// Triangles are ignored.
type Collider struct {
	hetvec.Nop

	// Hits holds a "a-b" entry for each colliding pair,
	// in the order found.
	Hits []string

	// Limit, when non-zero, holds the number of hits after which
	// collision checking stops.
	Limit int
}

func (c *Collider) hit(a, b string) error {
	c.Hits = append(c.Hits, a+"-"+b)
	if c.Limit > 0 && len(c.Hits) >= c.Limit {
		return ErrTooManyHits
	}
	return nil
}

func (c *Collider) Spheres(a, b Sphere) error {
	if spheresOverlap(a, b) {
		return c.hit(a.Name, b.Name)
	}
	return nil
}

func (c *Collider) SphereBox(s Sphere, b Box) error {
	if sphereBoxOverlap(s, b) {
		return c.hit(s.Name, b.Name)
	}
	return nil
}

func (c *Collider) Boxes(a, b Box) error {
	if boxesOverlap(a, b) {
		return c.hit(a.Name, b.Name)
	}
	return nil
}

// Checker looks up the check for each pair of shapes in a table.
// Triangles are checked by their bounding boxes.
type Checker struct {
	*hetvec.Table
}

// NewChecker returns a Checker that calls report for each
// colliding pair. Checking two triangles against each other
// fails with an error wrapping errors.ErrUnsupported.
func NewChecker(report func(a, b string)) Checker {
	t := hetvec.NewTable()
	hetvec.HandleFunc(t, func(a, b Sphere) {
		if spheresOverlap(a, b) {
			report(a.Name, b.Name)
		}
	})
	hetvec.HandleFunc(t, func(s Sphere, b Box) {
		if sphereBoxOverlap(s, b) {
			report(s.Name, b.Name)
		}
	})
	hetvec.HandleFunc(t, func(a, b Box) {
		if boxesOverlap(a, b) {
			report(a.Name, b.Name)
		}
	})
	hetvec.HandleFunc(t, func(tr Triangle, s Sphere) {
		if sphereBoxOverlap(s, tr.bounds()) {
			report(tr.Name, s.Name)
		}
	})
	hetvec.HandleFunc(t, func(tr Triangle, b Box) {
		if boxesOverlap(tr.bounds(), b) {
			report(tr.Name, b.Name)
		}
	})
	hetvec.Handle(t, func(a, b Triangle) error {
		return fmt.Errorf("triangle %s against triangle %s: %w", a.Name, b.Name, errors.ErrUnsupported)
	})
	return Checker{t}
}
