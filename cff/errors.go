package cff

import "fmt"

// PlanError indicates that the subset plan or the input accessor violated
// one of the invariants Create relies on (a missing .notdef glyph, a SID
// overflow, an encoding with too many codes, ...).
type PlanError struct {
	Reason string
}

func (e *PlanError) Error() string {
	return "cff: " + e.Reason
}

func planError(reason string, args ...interface{}) error {
	return &PlanError{Reason: fmt.Sprintf(reason, args...)}
}

// FlattenError indicates that a CharString could not be flattened: a bad
// operator, a truncated stream, or a stack/recursion limit was exceeded.
type FlattenError struct {
	GID    GID
	Reason string
}

func (e *FlattenError) Error() string {
	return fmt.Sprintf("cff: glyph %d: %s", e.GID, e.Reason)
}

func flattenError(gid GID, reason string, args ...interface{}) error {
	return &FlattenError{GID: gid, Reason: fmt.Sprintf(reason, args...)}
}

// SerializeError indicates that a serializer produced a different number of
// bytes than its size calculation predicted, or that the writer's cursor
// diverged from the planned offset of a sub-table. Either case is a
// contract violation inside this package, never a property of the input.
type SerializeError struct {
	Table  string
	Reason string
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("cff: %s: %s", e.Table, e.Reason)
}

func serializeError(table, reason string, args ...interface{}) error {
	return &SerializeError{Table: table, Reason: fmt.Sprintf(reason, args...)}
}
