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

// VisitedSet tracks which canonical k-mers unitig extraction has already
// consumed. It has the same shape and indexing as Store but is mutable
// and owned exclusively by a single extraction run; it is never shared
// or reused across runs.
type VisitedSet struct {
	bits *bitset
	k    int
}

// NewVisitedSet allocates an empty visited set sized for k.
func NewVisitedSet(k int) *VisitedSet {
	return &VisitedSet{bits: newBitset(KmerSpaceSize(k)), k: k}
}

// Contains reports whether x's canonical form has already been visited.
func (v *VisitedSet) Contains(x KCode) bool {
	return v.bits.get(IndexOf(x, v.k))
}

// ContainsIndex reports whether the bitset has bit i set, for i already a
// canonical index.
func (v *VisitedSet) ContainsIndex(i uint64) bool {
	return v.bits.get(i)
}

// Insert marks x's canonical form as visited.
func (v *VisitedSet) Insert(x KCode) {
	v.bits.set(IndexOf(x, v.k))
}
