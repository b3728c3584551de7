// Package planner implements the Segment Planner (C6) and the Forward-Path
// Controller (C7): it drives astar.Search across an ordered waypoint
// sequence, concatenates the resulting segments into one polyline, and
// optionally forbids the reverse of each segment's last edge before the
// next segment runs.
//
// The sequencing loop is grounded on the teacher library's builder package,
// which assembles a composite structure from a sequence of smaller calls
// while tracking per-step metrics; the forbidden-set scoping follows the
// same "acquire, defer release, release on every exit path" discipline the
// teacher uses around its mutex pairs, adapted here to a plain map instead
// of a lock.
package planner
