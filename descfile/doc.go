// Package descfile reads and writes the points-description text format at
// the repository boundary: a UTF-8, line-oriented file with a `KEY =
// VALUE` header block terminated by a literal `DATA` line, followed by a
// whitespace-separated data block whose columns are either `tag:value` or
// bare `value`, with `#` comments and blank lines ignored throughout.
//
// File is the generic parse result; PointsFile interprets it under the
// points-file convention (frame index, x, y, optional trajectory id) used
// to feed and render astre solves.
package descfile
