// Package token defines lexical token kinds and comment metadata for C++ sources.
// Invariants:
//   - Token.Text is a copy of the source bytes covered by Token.Span.
//   - Comments are first-class tokens (Kind == Comment) and carry CommentInfo;
//     whitespace is never emitted.
//   - Preprocessor directives are a single opaque Directive token spanning the
//     whole logical line (including backslash continuations).
//   - Only keywords that shape declarations get their own kinds. Builtin type
//     names and specifiers (int, unsigned, const, static, virtual, ...) are
//     identifiers and are recognized by the scanner through their text.
package token
