package switchsim_test

import (
	"testing"
	"testing/quick"

	sw "github.com/db47h/switchsim"
	"github.com/pkg/errors"
)

func trace(t *testing.T, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}

func TestNetlist_rails(t *testing.T) {
	nl := sw.NewNetlist()
	if nl.Len() != 2 {
		t.Fatalf("expected 2 wires, got %d", nl.Len())
	}
	for _, r := range []struct {
		w sw.Wire
		v bool
	}{{sw.Ground, false}, {sw.Supply, true}} {
		if !nl.IsRail(r.w) {
			t.Fatalf("%v is not a rail", r.w)
		}
		if s := nl.State(r.w); s.Value != r.v || s.Strength != sw.RailStrength {
			t.Fatalf("%v: expected %v at rail strength, got %v", r.w, r.v, s)
		}
	}
}

func TestNetlist_railsImmune(t *testing.T) {
	f := func(v bool, s uint16) bool {
		nl := sw.NewNetlist()
		gnd, vcc := nl.Connection(sw.Ground), nl.Connection(sw.Supply)
		for i := 0; i < 3; i++ {
			if err := nl.Drive(gnd, v, int(s)); err != nil {
				return false
			}
			if err := nl.Drive(vcc, v, int(s)); err != nil {
				return false
			}
			if ch, ct := nl.Commit(sw.Ground); ch || ct {
				return false
			}
			if ch, ct := nl.Commit(sw.Supply); ch || ct {
				return false
			}
		}
		return nl.State(sw.Ground) == sw.WireState{Value: false, Strength: sw.RailStrength} &&
			nl.State(sw.Supply) == sw.WireState{Value: true, Strength: sw.RailStrength}
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestNetlist_bias(t *testing.T) {
	f := func(bias bool, n uint8) bool {
		nl := sw.NewNetlist()
		w := nl.NewWire(bias)
		// released drivers do not take part
		for i := 0; i < int(n%4); i++ {
			nl.Release(nl.Connection(w))
		}
		nl.Commit(w)
		s := nl.State(w)
		return s.Value == bias && s.Strength == sw.HiZ && s.IsHiZ() && nl.IsHiZ(w) && nl.Bias(w) == bias
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestNetlist_strongestWins(t *testing.T) {
	type drive struct {
		v bool
		s int
	}
	td := []struct {
		name       string
		drives     []drive
		value      bool
		strength   int
		contention bool
	}{
		{"pull", []drive{{true, sw.Weak}}, true, sw.Weak, false},
		{"strong over weak", []drive{{true, sw.Weak}, {false, sw.Strong}}, false, sw.Strong, false},
		{"weak after strong", []drive{{false, 3}, {true, sw.Weak}}, false, 3, false},
		{"released ignored", []drive{{true, sw.HiZ}, {false, sw.Weak}}, false, sw.Weak, false},
		{"agreeing", []drive{{true, sw.Strong}, {true, sw.Strong}}, true, sw.Strong, false},
		{"contention", []drive{{true, sw.Strong}, {false, sw.Strong}}, true, sw.Strong, true},
		{"contention first wins", []drive{{false, 2}, {true, 2}, {true, 2}}, false, 2, true},
		{"contention overridden", []drive{{false, 1}, {true, 1}, {true, 2}}, true, 2, false},
		{"weak contention", []drive{{false, sw.Weak}, {true, sw.Weak}}, false, sw.Weak, true},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			nl := sw.NewNetlist()
			w := nl.NewWire(true)
			for _, dr := range d.drives {
				if err := nl.Drive(nl.Connection(w), dr.v, dr.s); err != nil {
					t.Fatal(err)
				}
			}
			changed, contention := nl.Commit(w)
			if !changed {
				t.Error("expected a change")
			}
			if contention != d.contention {
				t.Errorf("expected contention %v, got %v", d.contention, contention)
			}
			if s := nl.State(w); s.Value != d.value || s.Strength != d.strength {
				t.Errorf("expected %v(%d), got %v", d.value, d.strength, s)
			}
			if changed, _ = nl.Commit(w); changed {
				t.Error("second commit changed the wire")
			}
		})
	}
}

func TestNetlist_pullRelease(t *testing.T) {
	nl := sw.NewNetlist()
	w := nl.NewWire(false)
	d := nl.Connection(w)
	nl.Pull(d, true)
	if v, s := nl.Driving(d); !v || s != sw.Weak {
		t.Fatalf("expected weak true, got %v, %d", v, s)
	}
	nl.Commit(w)
	if !nl.Value(w) || nl.Strength(w) != sw.Weak {
		t.Fatalf("expected weak true, got %v", nl.State(w))
	}
	nl.Release(d)
	nl.Commit(w)
	if nl.Value(w) || !nl.IsHiZ(w) {
		t.Fatalf("expected floating low, got %v", nl.State(w))
	}
	if ds := nl.Drivers(w); len(ds) != 1 || ds[0] != d {
		t.Fatalf("unexpected drivers %v", ds)
	}
}

func TestNetlist_connect(t *testing.T) {
	nl := sw.NewNetlist()
	a, b := nl.NewWire(false), nl.NewWire(false)
	da, db := nl.Connection(a), nl.Connection(b)
	if err := nl.Drive(da, true, 5); err != nil {
		t.Fatal(err)
	}
	nl.Commit(a)
	nl.Connect(db, a)
	nl.Commit(b)
	if s := nl.State(b); s != (sw.WireState{Value: true, Strength: 5}) {
		t.Fatalf("expected the state of a, got %v", s)
	}
}

func TestNetlist_invalidStrength(t *testing.T) {
	nl := sw.NewNetlist()
	w := nl.NewWire(false)
	d := nl.Connection(w)
	err := nl.Drive(d, true, -2)
	var se *sw.InvalidStrengthError
	if !errors.As(err, &se) {
		t.Fatalf("expected InvalidStrengthError, got %v", err)
	}
	if se.Driver != d || se.Strength != -2 {
		t.Fatalf("unexpected error payload %+v", se)
	}
	if _, s := nl.Driving(d); s != sw.HiZ {
		t.Fatalf("driver changed by an invalid drive: %d", s)
	}
}

func TestNetlist_force(t *testing.T) {
	nl := sw.NewNetlist()
	w := nl.NewWire(false)
	d := nl.Connection(w)
	nl.Force(d, true, 3)
	if v, s := nl.Driving(d); !v || s != 3 {
		t.Fatalf("expected 1(3), got %v(%d)", v, s)
	}
	nl.Force(d, true, -5)
	if v, s := nl.Driving(d); v || s != sw.HiZ {
		t.Fatalf("expected a released driver, got %v(%d)", v, s)
	}
}

func TestNetlist_connectionPanics(t *testing.T) {
	expectPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected a panic", name)
			}
		}()
		f()
	}
	nl := sw.NewNetlist()
	expectPanic("unknown wire", func() { nl.Connection(sw.Wire(42)) })
	in := nl.NewWire(false)
	p := sw.NewPChannel()
	p.Gate, p.Source, p.Drain = in, sw.Supply, nl.NewWire(false)
	c, err := sw.NewCircuit(nl, p)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	expectPanic("frozen", func() { nl.Connection(in) })
}

func TestWire_String(t *testing.T) {
	for _, d := range []struct {
		w sw.Wire
		s string
	}{{sw.NoWire, "<nc>"}, {sw.Ground, "GND"}, {sw.Supply, "VCC"}, {sw.Wire(7), "w7"}} {
		if d.w.String() != d.s {
			t.Errorf("expected %q, got %q", d.s, d.w.String())
		}
	}
	for _, d := range []struct {
		s sw.WireState
		e string
	}{
		{sw.WireState{Value: true, Strength: sw.HiZ}, "1(z)"},
		{sw.WireState{Value: false, Strength: sw.Weak}, "0(0)"},
		{sw.WireState{Value: true, Strength: sw.RailStrength}, "1(rail)"},
	} {
		if d.s.String() != d.e {
			t.Errorf("expected %q, got %q", d.e, d.s.String())
		}
	}
}
