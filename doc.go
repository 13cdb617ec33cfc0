/*
Package switchsim is a switch-level digital circuit simulator.

Circuits are built bottom-up from N-channel and P-channel transistors. Wires
and drivers live in a Netlist and are referenced by handle; every wire resolves
the strongest of its drivers each round, with the Ground and Supply rails
fixed forever.

A circuit is described as a tree of Components. Composite components only
wire subcomponents together; transistors are the only primitives with
behavior. NewCircuit elaborates the tree once into a flat netlist, then Run
alternates evaluation of every primitive and resolution of every wire until a
round changes nothing, or reports a NonConvergenceError when the round limit
is reached.

The gates package provides the usual CMOS logic gates built on this API.
*/
package switchsim
