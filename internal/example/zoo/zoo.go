// Package zoo holds a small heterogeneous collection of unrelated
// things, and a visitor that reacts to some of the pairs among them.
package zoo

import (
	"errors"
	"fmt"
	"io"

	"github.com/rogpeppe/hetvec"
)

//go:generate go run github.com/rogpeppe/hetvec/cmd/hetvecgen

type Dog struct {
	Name string
}

func (d Dog) String() string {
	return "dog:" + d.Name
}

type Car struct {
	Make string
}

func (c Car) String() string {
	return "car:" + c.Make
}

type Foo struct {
	N int
}

func (f Foo) String() string {
	return fmt.Sprintf("foo:%d", f.N)
}

type Bar struct {
	N int
}

func (b Bar) String() string {
	return fmt.Sprintf("bar:%d", b.N)
}

// Behaviour prints a message for pairs of dogs, for a dog
// followed by a car and for a bar followed by a foo. All
// other pairs are ignored.
type Behaviour struct {
	hetvec.Nop
	W io.Writer
}

func (b Behaviour) Bark(x, y Dog) {
	fmt.Fprintln(b.W, "Two dogs are barking!")
}

func (b Behaviour) HitDog(d Dog, c Car) {
	fmt.Fprintln(b.W, "A car hit the dog, oh no!")
}

func (b Behaviour) Foobar(x Bar, y Foo) {
	fmt.Fprintln(b.W, "Foobar!")
}

// Recorder records every pair it is given, in order.
type Recorder struct {
	Calls []string

	// Limit, when non-zero, makes Fallback panic with
	// ErrRecorderFull instead of recording a pair once
	// Limit pairs have been recorded.
	Limit int
}

// ErrRecorderFull is the value a Recorder panics with
// when its limit is reached.
var ErrRecorderFull = errors.New("recorder full")

func (r *Recorder) Fallback(a, b any) {
	if r.Limit > 0 && len(r.Calls) >= r.Limit {
		panic(ErrRecorderFull)
	}
	r.Calls = append(r.Calls, fmt.Sprintf("%v %v", a, b))
}
