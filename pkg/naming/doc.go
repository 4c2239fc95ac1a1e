// Package naming computes target file names.
//
// Two strategies exist. Sequential naming uses the bare file number as the
// new stem. Pattern naming either appends the number to a literal prefix
// ("photo" gives photo1, photo2...) or, when the pattern contains both
// braces, treats it as a template with one replacement field:
//
//	file_{:03d}   file_001, file_002, ...
//	{:>4}         "   1", "   2", ...
//	img-{}        img-1, img-2, ...
//
// Templates are parsed once by ParseFormatter and then applied to every
// number with Formatter.Format. The field accepts a format specifier of the
// form [[fill]align][sign][#][0][width][,|_][type] where type is one of
// d, n, b, o, x or X.
//
// The extension of the source file is appended verbatim after the
// generated stem.
package naming
