// Package mapper converts backend recommendation records into the
// presentation shapes rendered by the terminal UI.
//
// The same conversion is used for items delivered by the stream and for
// items returned by the non-streaming endpoint, so both paths render
// identical cards. Missing numeric fields are treated as absent rather than
// zero: a card never shows a score of 0 or NaN.
package mapper
