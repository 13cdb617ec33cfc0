package switchsim_test

import (
	"strings"
	"testing"

	sw "github.com/db47h/switchsim"
	"github.com/db47h/switchsim/gates"
	"github.com/pkg/errors"
)

func TestWalk(t *testing.T) {
	nl := sw.NewNetlist()
	inv := gates.NewInverter(nl)
	if err := inv.Elaborate(nl); err != nil {
		t.Fatal(err)
	}
	cs := sw.Walk(inv)
	if len(cs) != 3 || cs[0] != sw.Component(inv) {
		t.Fatalf("expected the inverter and its two transistors, got %d components", len(cs))
	}
	if cs[1].Name() != "PMOS" || cs[2].Name() != "NMOS" {
		t.Fatalf("unexpected order: %s, %s", cs[1].Name(), cs[2].Name())
	}
	ps := sw.Primitives(inv)
	if len(ps) != 2 || ps[0] != cs[1] || ps[1] != cs[2] {
		t.Fatal("unexpected primitives")
	}
	ws := sw.Wires(inv)
	ex := []sw.Wire{inv.In, inv.Out, sw.Supply, sw.Ground}
	if len(ws) != len(ex) {
		t.Fatalf("expected wires %v, got %v", ex, ws)
	}
	for i := range ex {
		if ws[i] != ex[i] {
			t.Fatalf("expected wires %v, got %v", ex, ws)
		}
	}
}

func TestWalk_nested(t *testing.T) {
	nl := sw.NewNetlist()
	and := gates.NewAnd(nl, 3)
	if err := and.Elaborate(nl); err != nil {
		t.Fatal(err)
	}
	// NAND3: 6 transistors, inverter: 2
	if n := len(sw.Primitives(and)); n != 8 {
		t.Fatalf("expected 8 transistors, got %d", n)
	}
	// 3 inputs, out, mid, 2 wires in the NAND series chain and both rails.
	if n := len(sw.Wires(and)); n != 9 {
		t.Fatalf("expected 9 wires, got %d: %v", n, sw.Wires(and))
	}
	seen := make(map[sw.Wire]bool)
	for _, w := range sw.Wires(and) {
		if seen[w] {
			t.Fatalf("duplicate wire %v", w)
		}
		seen[w] = true
	}
}

func TestElaborate_errors(t *testing.T) {
	var ee *sw.ElaborationError

	nl := sw.NewNetlist()
	inv := gates.NewInverter(nl)
	if err := inv.Elaborate(nl); err != nil {
		t.Fatal(err)
	}
	if err := inv.Elaborate(nl); !errors.As(err, &ee) || ee.Err != sw.ErrElaborated {
		t.Fatalf("expected double elaboration error, got %v", err)
	}
	if !inv.Elaborated() {
		t.Fatal("expected Elaborated to be true")
	}

	inv = gates.NewInverter(nl)
	inv.In = sw.NoWire
	err := inv.Elaborate(nl)
	if !errors.As(err, &ee) || ee.Err != sw.ErrUnconnected || ee.Terminal != "in" || ee.Component != "NOT" {
		t.Fatalf("expected unconnected input error, got %v", err)
	}

	if err = sw.NewGroup("empty").Elaborate(nl); !errors.As(err, &ee) || ee.Err != sw.ErrEmptyComposite {
		t.Fatalf("expected empty composite error, got %v", err)
	}

	// errors from children are wrapped with the parent's name
	nand := gates.NewNand(nl, 2)
	nand.In[1] = sw.NoWire
	err = sw.NewGroup("grp", gates.NewInverter(nl), nand).Elaborate(nl)
	if !errors.As(err, &ee) || ee.Err != sw.ErrUnconnected || ee.Terminal != "in[1]" {
		t.Fatalf("expected unconnected input error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "grp: elaborate NAND.in[1]") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	trace(t, err)
}

func TestNewCircuit_errors(t *testing.T) {
	nl := sw.NewNetlist()
	if _, err := sw.NewCircuit(nl, nil); err == nil {
		t.Fatal("expected an error for a nil root")
	}

	inv := gates.NewInverter(nl)
	inv.Out = sw.NoWire
	_, err := sw.NewCircuit(nl, inv)
	var ee *sw.ElaborationError
	if !errors.As(err, &ee) || ee.Terminal != "out" {
		t.Fatalf("expected an elaboration error, got %v", err)
	}
	if errors.Cause(err) != error(ee) {
		t.Fatal("expected the elaboration error as the cause")
	}
	if !errors.Is(err, sw.ErrUnconnected) {
		t.Fatalf("expected %v to match ErrUnconnected", err)
	}

	// foreign wire
	other := sw.NewNetlist()
	for i := 0; i < 10; i++ {
		other.NewWire(false)
	}
	foreign := gates.NewInverter(other)
	_, err = sw.NewCircuit(sw.NewNetlist(), foreign)
	if !errors.As(err, &ee) || ee.Err != sw.ErrForeignWire {
		t.Fatalf("expected a foreign wire error, got %v", err)
	}

	nl = sw.NewNetlist()
	c, err := sw.NewCircuit(nl, gates.NewInverter(nl))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	if _, err = sw.NewCircuit(nl, gates.NewInverter(nl)); err == nil {
		t.Fatal("expected an error for a netlist already in use")
	}
}
