// Package cadimo computes constrained shortest paths over a static,
// undirected, embedded 3D spatial graph modelling a dual-system
// cable-routing infrastructure.
//
// Given a graph file (§6.1), an optional tramo-id map (§6.2), a cable
// class, and an ordered waypoint sequence, Route wires the cable access
// policy (cable), the tagged graph store (graphstore), the filtered
// adjacency builder (adjacency), and the segment planner (planner) into
// one call, then automatically runs the endpoint diagnoser (diagnose) on
// any EndpointNotInGraph, EndpointInForbiddenSystem, or NoPath failure and
// attaches its findings to the returned error.
//
// Subpackages can be used independently; Route is the convenience façade
// the cmd/cadimo CLI is built on.
package cadimo
