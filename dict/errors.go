package dict

import "errors"

// ErrBadArgument is the single sentinel error surfaced by every precondition
// violation in this package: width mismatches, out-of-order append, CAS
// mismatch, intersection with fewer than two inputs, merge of incompatible
// shapes, from_orddict on a non-empty Dict, malformed deserialize input, and
// update functions returning wrong-width values. Callers distinguish the
// concrete cause from the wrapped message (errors.Is only confirms the
// kind, the %w-wrapped text carries the specifics).
var ErrBadArgument = errors.New("dict: bad argument")

// ErrNotFound is returned by lookup-style operations (Find, Next, NextNth,
// First, Last) when the queried key, or any key at all, is absent. It is not
// a failure of the dictionary; callers are expected to check for it.
var ErrNotFound = errors.New("dict: not found")
