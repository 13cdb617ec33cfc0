package gates_test

import (
	"testing"

	sw "github.com/db47h/switchsim"
	"github.com/db47h/switchsim/gates"
	"github.com/db47h/switchsim/swtest"
)

func toInt(bs []bool) int {
	n := 0
	for i, b := range bs {
		if b {
			n |= 1 << uint(i)
		}
	}
	return n
}

func TestHalfAdder(t *testing.T) {
	swtest.TruthTable(t, testRounds,
		func(nl *sw.Netlist) gates.Part { return gates.NewHalfAdder(nl) },
		func(in []bool) []bool { return []bool{in[0] != in[1], in[0] && in[1]} })
}

func TestFullAdder(t *testing.T) {
	swtest.TruthTable(t, testRounds,
		func(nl *sw.Netlist) gates.Part { return gates.NewFullAdder(nl) },
		func(in []bool) []bool {
			n := 0
			for _, v := range in {
				if v {
					n++
				}
			}
			return []bool{n&1 != 0, n&2 != 0}
		})
}

func TestAdder(t *testing.T) {
	for _, bits := range []int{1, 2, 4} {
		bits := bits
		swtest.TruthTable(t, 64,
			func(nl *sw.Netlist) gates.Part { return gates.NewAdder(nl, bits) },
			func(in []bool) []bool {
				a, b := toInt(in[:bits]), toInt(in[bits:])
				s := a + b
				out := make([]bool, bits+1)
				for i := range out {
					out[i] = s&(1<<uint(i)) != 0
				}
				return out
			})
	}
}

func TestMux(t *testing.T) {
	swtest.TruthTable(t, testRounds,
		func(nl *sw.Netlist) gates.Part { return gates.NewMux(nl) },
		func(in []bool) []bool {
			if in[2] {
				return []bool{in[1]}
			}
			return []bool{in[0]}
		})
	swtest.TruthTable(t, testRounds,
		func(nl *sw.Netlist) gates.Part { return gates.NewDMux(nl) },
		func(in []bool) []bool { return []bool{in[0] && !in[1], in[0] && in[1]} })
}

func TestTGate(t *testing.T) {
	nl := sw.NewNetlist()
	g := gates.NewTGate(nl)
	in, en, enN := gates.InputOn(g.In), gates.InputOn(g.En), gates.InputOn(g.EnN)
	var last sw.WireState
	out := gates.OutputFunc(g.Out, func(s sw.WireState) { last = s })
	c, err := sw.NewCircuit(nl, sw.NewGroup("tg", g, in, en, enN, out))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	for _, v := range []bool{false, true} {
		in.Set(v)
		en.Set(true)
		enN.Set(false)
		if _, err = c.Run(testRounds); err != nil {
			t.Fatal(err)
		}
		if s := nl.State(g.Out); s.Value != v || s.Strength != sw.Strong {
			t.Fatalf("enabled, in=%v: got %v", v, s)
		}
		// the output sink sees the settled state.
		if last != nl.State(g.Out) {
			t.Fatalf("output saw %v, expected %v", last, nl.State(g.Out))
		}
		en.Set(false)
		enN.Set(true)
		if _, err = c.Run(testRounds); err != nil {
			t.Fatal(err)
		}
		if !nl.IsHiZ(g.Out) {
			t.Fatalf("disabled, in=%v: got %v", v, nl.State(g.Out))
		}
	}
}
