// Package picker is an interactive Bubble Tea front end for a screen list.
//
// The picker shows the visible rows of a listview.List and lets the user
// move a highlight, toggle rows in and out of the selection, and type a new
// value for an editable list:
//
//	↑/↓ or k/j   move the highlighted (top) row
//	space or x   toggle the highlighted row
//	e            open the value input (editable lists only)
//	c            keep a row inserted by the value input
//	enter or s   save and exit
//	q or esc     exit without saving
//
// Every change is made through the list itself, so the caller only has to
// write the list's items back when Saved reports true. Saving also writes
// the highlight onto the top row as "<" or ">", which the next scan reads
// back.
package picker
