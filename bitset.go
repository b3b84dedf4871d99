// Copyright © 2018-2021 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package abruijn

// bitset is a dense, byte-backed bit vector addressed by the canonical
// k-mer index of §3 (RemoveFirstBit(Canonical(x, k))). It backs both the
// immutable solidity store (C2) and the mutable visited set (C4); they
// differ only in whether anything is allowed to call set after
// construction.
type bitset struct {
	bits []byte
	len  uint64 // number of addressable bit positions
}

func newBitset(n uint64) *bitset {
	return &bitset{bits: make([]byte, (n+7)/8), len: n}
}

// bitsetFromBytes wraps an existing byte slice without copying it; used
// when a solidity bitfield is read straight off disk.
func bitsetFromBytes(raw []byte, n uint64) *bitset {
	return &bitset{bits: raw, len: n}
}

func (b *bitset) get(i uint64) bool {
	return b.bits[i>>3]&(1<<(uint(i)&7)) != 0
}

func (b *bitset) set(i uint64) {
	b.bits[i>>3] |= 1 << (uint(i) & 7)
}

func (b *bitset) Len() uint64 {
	return b.len
}
