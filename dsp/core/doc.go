// Package core holds the small shared conventions every processor in this
// module relies on: the sample-rate [Clock] and its propagation contract,
// the [Cooker] contract that turns control-rate specs into processing-ready
// snapshots, processor configuration options, and numeric helpers.
package core
