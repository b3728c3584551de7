// Package report implements the Result Reporter (C9): dual text/JSON
// rendering of a planner.Result on success, or an error's taxonomy kind,
// offending segment, and diagnoser findings on failure.
//
// Grounded on jinterlante1206-AleutianLocal's cmd_graph.go
// outputGraphJSON/outputCallersText split: one encoding/json path for
// scripting, one formatted-text path for a human reading a terminal.
package report
