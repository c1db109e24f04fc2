// Package diag defines the diagnostic model shared by the tokenizer, the
// declaration scanner and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form. The ranges
//     are LEX1xxx (tokenizer), STR2xxx (declaration structure) and IO4xxx
//     (loading and decoding files).
//   - Message: short human oriented text.
//   - Primary: the source.Span pointing to the issue.
//   - Notes: optional secondary spans, for example the opening brace of a
//     scope that was never closed.
//
// Findings are never Go errors. Every diagnostic is non-fatal: the analysis
// continues and the per-file report is marked partial.
//
// # Emitting diagnostics
//
// Phases depend only on the Reporter interface. BagReporter stores into a
// bounded Bag, DedupReporter filters repeated entries, NopReporter drops
// everything. ReportBuilder is available when a note has to be attached.
//
// Package diag performs no IO and no formatting beyond the golden form used
// by tests; rendering lives in internal/diagfmt.
package diag
