// Package catalog defines the circulation desk's domain records: books,
// physical copies, readers and loans, together with the two rules embedded in
// them (reader borrow eligibility and late-day computation).
//
// Records are plain data holders keyed by caller-supplied opaque string
// identifiers; existence is enforced by store lookup, not by format. All
// dates are whole UTC days (see pkg/clock).
package catalog
