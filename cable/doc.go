// Package cable implements the cable access policy (C3): a fixed,
// non-configurable mapping from cable class to the set of subsystems a
// cable of that class may traverse, plus endpoint validation against that
// policy.
package cable
