// Package diag defines the diagnostic model shared by the lexer, parser,
// tree checks and driver.
//
// Producers emit through a Reporter so they stay decoupled from storage;
// BagReporter collects into a Bag, which the CLI sorts, deduplicates and
// hands to internal/diagfmt for rendering. Package diag performs no IO and
// no formatting beyond the compact short form in short.go.
//
// A Diagnostic carries a Severity (info, warning, error), a numeric Code
// with a stable string ID (LEX1002, SYN2001, ...), a message, the primary
// span and optional notes. Notes must add context rather than repeat the
// message.
package diag
