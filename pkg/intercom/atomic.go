package intercom

import (
	"math"
	"sync/atomic"
)

// atomicFloat32 gives lock-free load/store of a float32 by bit-casting it to
// a uint32. Used for headroom_db, which §9's Design Notes calls out as
// live-applied on every tick and mutated independently of the (lock-guarded)
// routing matrices — a good fit for a single atomic word instead of pulling
// the config mutex on the hot path.
type atomicFloat32 struct {
	bits atomic.Uint32
}

func newAtomicFloat32(v float32) atomicFloat32 {
	var a atomicFloat32
	a.bits.Store(math.Float32bits(v))
	return a
}

func (a *atomicFloat32) Load() float32 {
	return math.Float32frombits(a.bits.Load())
}

func (a *atomicFloat32) Store(v float32) {
	a.bits.Store(math.Float32bits(v))
}
