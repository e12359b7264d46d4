// Package sequencer decides whether a directory of frames overlaps enough to
// be sequenced and, if so, renames every candidate to
// <prefix><NNN>_<original name> in capture order.
//
// The decision compares the directory-wide mean overlap indicator against the
// threshold, so either every candidate is renamed or none is. Files that
// already carry the prefix are never candidates, which makes repeated runs
// idempotent.
package sequencer
