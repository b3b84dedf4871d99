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

// MaxDeepDefault is the --edge-weight-threshold default: the deepest gap
// of consecutive non-solid k-mers the oracle will jump across.
const MaxDeepDefault = 5

// Oracle answers predecessor/successor queries over a Store, tolerating
// up to MaxDeep consecutive non-solid k-mers between two solid ones.
type Oracle struct {
	store   *Store
	k       int
	maxDeep int

	// kmermasks[d] isolates the trailing k-(d+1) nucleotides of a code,
	// for the gap-of-(d+1) probe at depth d.
	kmermasks []uint64

	// subkmer[d] enumerates every length-(d+1) nucleotide extension,
	// packed into the low 2(d+1) bits of a KCode.
	subkmer [][]KCode
}

// NewOracle builds an Oracle over store with the given maxDeep, which
// must be in [1, k-1].
func NewOracle(store *Store, maxDeep int) *Oracle {
	k := store.K()
	if maxDeep < 1 {
		maxDeep = 1
	}
	if maxDeep > k-1 {
		maxDeep = k - 1
	}

	o := &Oracle{
		store:     store,
		k:         k,
		maxDeep:   maxDeep,
		kmermasks: make([]uint64, maxDeep),
		subkmer:   make([][]KCode, maxDeep),
	}

	full := (uint64(1) << uint(2*k)) - 1
	for d := 0; d < maxDeep; d++ {
		o.kmermasks[d] = full >> uint(2*(d+1))
		o.subkmer[d] = enumerateSuffixes(d + 1)
	}

	return o
}

// enumerateSuffixes returns every packed code of a length-n nucleotide
// string, in ascending numeric order (0..4^n-1).
func enumerateSuffixes(n int) []KCode {
	total := uint64(1) << uint(2*n)
	out := make([]KCode, total)
	for i := range out {
		out[i] = KCode(i)
	}
	return out
}

// K returns the oracle's fixed k-mer size.
func (o *Oracle) K() int {
	return o.k
}

// MaxDeep returns the oracle's configured maximum gap depth.
func (o *Oracle) MaxDeep() int {
	return o.maxDeep
}

// IsSolid reports whether x's canonical form is marked solid in the
// underlying store.
func (o *Oracle) IsSolid(x KCode) bool {
	return o.store.IsSolid(x)
}

// Successors enumerates the solid k-mers reachable by extending x on the
// right, at the shallowest depth that yields any candidate. ok is false
// if no depth up to MaxDeep produces one. depth is the gap length: 1 for
// an immediate neighbor, larger when non-solid k-mers were skipped.
func (o *Oracle) Successors(x KCode) (candidates []KCode, depth int, ok bool) {
	rc := RevComp(x, o.k)
	for d := 0; d < o.maxDeep; d++ {
		prefix := (uint64(x) & o.kmermasks[d]) << uint(2*(d+1))
		var found []KCode
		for _, suffix := range o.subkmer[d] {
			candidate := KCode(prefix | uint64(suffix))
			if candidate == x || candidate == rc {
				continue
			}
			if o.store.IsSolid(candidate) {
				found = append(found, candidate)
			}
		}
		if len(found) > 0 {
			return found, d + 1, true
		}
	}
	return nil, 0, false
}

// Predecessors is the mirror of Successors, extending x on the left.
func (o *Oracle) Predecessors(x KCode) (candidates []KCode, depth int, ok bool) {
	rc := RevComp(x, o.k)
	for d := 0; d < o.maxDeep; d++ {
		suffix := uint64(x) >> uint(2*(d+1))
		shift := uint(2 * (o.k - (d + 1)))
		var found []KCode
		for _, prefix := range o.subkmer[d] {
			candidate := KCode((uint64(prefix) << shift) | suffix)
			if candidate == x || candidate == rc {
				continue
			}
			if o.store.IsSolid(candidate) {
				found = append(found, candidate)
			}
		}
		if len(found) > 0 {
			return found, d + 1, true
		}
	}
	return nil, 0, false
}
