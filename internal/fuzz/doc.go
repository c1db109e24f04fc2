
// Package fuzztests houses Go fuzz harnesses that exercise the analysis
// pipeline (source -> lexer -> scanner -> attach -> publicapi). Its goal is to
// smoke test robustness and guard against panics, hangs and lost tokens on
// arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер, сканер и движок.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/scanner,
// internal/engine, internal/testkit.

package fuzztests
