// Package plan implements time-weighted daily task scheduling. Tasks are
// scored by impact per minute scaled by deadline urgency, ranked, then
// greedily packed into a fixed daily time budget with optional splitting
// of the last task that does not fully fit. Plans can be exported to JSON
// or CSV.
package plan
