package hetvec_test

import (
	"errors"
	"testing"

	"github.com/go-quicktest/qt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rogpeppe/hetvec"
)

type sphere struct{ r float64 }

type box struct{ w, h, d float64 }

func TestTableDispatchesOnExactPair(t *testing.T) {
	tab := hetvec.NewTable()
	var got []string
	hetvec.HandleFunc(tab, func(s sphere, b box) {
		got = append(got, "sphere-box")
	})
	hetvec.HandleFunc(tab, func(a, b sphere) {
		got = append(got, "sphere-sphere")
	})
	qt.Assert(t, qt.Equals(tab.Len(), 2))

	qt.Assert(t, qt.IsNil(tab.Fallback(sphere{1}, box{})))
	qt.Assert(t, qt.IsNil(tab.Fallback(sphere{1}, sphere{2})))
	// The mirrored pair has no handler of its own.
	qt.Assert(t, qt.IsNil(tab.Fallback(box{}, sphere{1})))
	// Pointers are distinct types.
	qt.Assert(t, qt.IsNil(tab.Fallback(&sphere{1}, box{})))
	qt.Assert(t, qt.DeepEquals(got, []string{"sphere-box", "sphere-sphere"}))
}

func TestTableDefault(t *testing.T) {
	var missed [][2]any
	tab := hetvec.NewTable(hetvec.WithDefault(func(a, b any) error {
		missed = append(missed, [2]any{a, b})
		return nil
	}))
	hetvec.HandleFunc(tab, func(sphere, box) {})

	tab.Fallback(sphere{}, box{})
	tab.Fallback(box{}, sphere{})
	tab.Fallback(1, "x")
	qt.Assert(t, qt.DeepEquals(missed, [][2]any{{box{}, sphere{}}, {1, "x"}}))
}

func TestTableHandlerError(t *testing.T) {
	errTooClose := errors.New("too close")
	tab := hetvec.NewTable()
	hetvec.Handle(tab, func(a, b sphere) error {
		if a.r+b.r > 1 {
			return errTooClose
		}
		return nil
	})
	qt.Assert(t, qt.IsNil(tab.Fallback(sphere{0.1}, sphere{0.1})))
	qt.Assert(t, qt.ErrorIs(tab.Fallback(sphere{1}, sphere{1}), errTooClose))
}

func TestTableDuplicateHandlerPanics(t *testing.T) {
	tab := hetvec.NewTable()
	hetvec.HandleFunc(tab, func(sphere, box) {})
	qt.Assert(t, qt.PanicMatches(func() {
		hetvec.HandleFunc(tab, func(sphere, box) {})
	}, `hetvec.Handle: duplicate handler for \(hetvec_test.sphere, hetvec_test.box\)`))
}

func TestTableLogsMisses(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tab := hetvec.NewTable(hetvec.WithLogger(zap.New(core)))
	hetvec.HandleFunc(tab, func(sphere, box) {})
	tab.Fallback(box{}, sphere{})

	entries := logs.FilterMessage("no handler for pair").All()
	qt.Assert(t, qt.HasLen(entries, 1))
	qt.Assert(t, qt.Equals(entries[0].ContextMap()["pair"], any("(hetvec_test.box, hetvec_test.sphere)")))
}

func TestSetLogger(t *testing.T) {
	before := hetvec.NewTable()
	core, logs := observer.New(zapcore.DebugLevel)
	hetvec.SetLogger(zap.New(core))
	t.Cleanup(func() {
		hetvec.SetLogger(nil)
	})
	tab := hetvec.NewTable()
	hetvec.HandleFunc(tab, func(box, box) {})
	qt.Assert(t, qt.Equals(logs.FilterMessage("registered pair handler").Len(), 1))

	// Existing tables keep their logger.
	hetvec.HandleFunc(before, func(box, box) {})
	qt.Assert(t, qt.Equals(logs.Len(), 1))

	hetvec.SetLogger(nil)
	qt.Assert(t, qt.Equals(hetvec.Logger().Core().Enabled(zapcore.ErrorLevel), false))
}
