package core

// Cooker is implemented by control-rate specs that produce a lightweight,
// processing-ready snapshot of themselves.
//
// Cook must not modify the receiver and must be cheap enough to call once
// per sample. The returned value is what audio-rate code reads, so one spec
// can feed many voices, each cooking and then modulating its own copy.
type Cooker[T any] interface {
	Cook() T
}
