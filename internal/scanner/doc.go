// Package scanner walks a C++ token stream and produces declaration records.
//
// The scanner is not a parser. It delimits statements, collapses bracketed
// groups into opaque units, tracks scope contexts with their current access
// level and classifies each declarator by the shape of the units around its
// name. Anything it does not understand (macro invocations, templates it
// cannot balance, expressions) is kept opaque and produces no record.
//
// Invariants:
//   - Scope contexts live in an arena addressed by index; there is no global state.
//   - Records are appended in the order their name is recognized; an aggregate
//     is recorded before its members.
//   - Owner has one entry per token: the owning record or decl.NoRecord.
//   - Scanning never fails. Structural problems are reported through
//     diag.Reporter and the partial result is returned.
package scanner
