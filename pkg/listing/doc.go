// Package listing enumerates the files a rename plan is built from.
//
// The order returned by ListFiles is load-bearing: the number given to a
// file depends only on its position in the byte-order sorted listing, so
// the same directory snapshot always numbers the same way.
package listing
