// Package table lays out multi-column, word-wrapped, color-aware text grids
// for help screens and tabular CLI output.
//
// A layout is described by column specifiers: Fixed columns have an exact
// width, Percent columns take a share of what the fixed columns leave over,
// and Wildcard columns split whatever remains. Cell text is wrapped to its
// column's width and padded so every rendered line occupies exactly the
// allocated number of terminal columns, with widths measured by the
// textwidth package so embedded color escapes never break alignment.
package table
