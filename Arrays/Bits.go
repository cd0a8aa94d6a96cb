package Arrays

import (
	"math/bits"
)

// Bits is a fixed-length array of bits packed into words.
type Bits struct {
	ws *Fixed[uint]
	n  uint
}

// NewBits returns n bits, all down.
func NewBits(n uint) Bits {
	return Bits{New[uint]((n + bits.UintSize - 1) / bits.UintSize), n}
}

func (u Bits) Len() uint {
	return u.n
}

func (u Bits) word(i uint) *uint {
	if i >= u.n {
		panic(&OutOfRangeError{i, u.n})
	}
	return u.ws.Get(i / bits.UintSize)
}

func (u Bits) Get(i uint) bool {
	return (*u.word(i)>>(i%bits.UintSize))&1 == 1
}

func (u Bits) Up(i uint) {
	*u.word(i) |= 1 << (i % bits.UintSize)
}

func (u Bits) Down(i uint) {
	*u.word(i) &^= 1 << (i % bits.UintSize)
}

func (u Bits) Flip(i uint) {
	*u.word(i) ^= 1 << (i % bits.UintSize)
}

// Count the bits that are up.
func (u Bits) Count() (c uint) {
	for _, w := range u.ws.Slice() {
		c += uint(bits.OnesCount(w))
	}
	return
}
