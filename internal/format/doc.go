// Package format prints a headspace module in canonical layout: one
// statement per line, function bodies indented, calls written without inner
// spaces. Comments between statements are kept; a construct with a comment
// inside it is copied from the source unchanged.
//
// Foreign code block lines are written back byte for byte, since emitters
// copy them verbatim.
package format
