// Package flow implements a wrapping row layout.
//
// Children are packed left to right into rows. When the next child does not fit into the
// remaining width of the current row, a new row is started below it. Layout happens in two
// phases. [Engine.Measure] partitions the children into rows and computes the size the container
// needs, returning a [Plan]. [Engine.Place] turns a Plan into one rectangle per child.
//
// The package does not know how children compute their sizes, nor how sizes are converted from
// device-independent units. Hosts resolve both and hand the engine plain integers. See the
// layout package for a binding to gio.
package flow
