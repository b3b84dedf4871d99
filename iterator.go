// Copyright © 2018-2020 Wei Shen <shenwei356@gmail.com>
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

import (
	"fmt"
)

// ErrInvalidK means k < 2.
var ErrInvalidK = fmt.Errorf("abruijn: invalid k-mer size")

// ErrEmptySeq means the sequence is empty.
var ErrEmptySeq = fmt.Errorf("abruijn: empty sequence")

// ErrShortSeq means the sequence is shorter than k.
var ErrShortSeq = fmt.Errorf("abruijn: sequence shorter than k")

// KmerIterator slides a length-k window across a read, emitting the
// canonical KCode of every window. Unlike the upstream strand iterator
// this is grounded on, it never aborts on an illegal base: a window
// straddling one is skipped silently and iteration resumes at the next
// valid window, since a single noisy window must never block the rest of
// a read from contributing solid k-mers (C8).
type KmerIterator struct {
	seq []byte
	k   int

	idx    int
	length int
	end    int

	first         bool
	kmer, preKmer []byte
	preCode       KCode
}

// NewKmerIterator returns an iterator over the forward strand of seq.
func NewKmerIterator(seq []byte, k int) (*KmerIterator, error) {
	if k < 2 {
		return nil, ErrInvalidK
	}
	if len(seq) == 0 {
		return nil, ErrEmptySeq
	}
	if len(seq) < k {
		return nil, ErrShortSeq
	}

	return &KmerIterator{
		seq:    seq,
		k:      k,
		length: len(seq),
		end:    len(seq) - k,
		first:  true,
	}, nil
}

// Next returns the canonical code of the next valid window, skipping over
// any window containing a non-ACGT byte. ok is false once every window of
// seq has been visited.
func (iter *KmerIterator) Next() (code KCode, ok bool) {
	for iter.idx <= iter.end {
		e := iter.idx + iter.k
		iter.kmer = iter.seq[iter.idx:e]

		var c KCode
		var err error
		if iter.first || iter.preKmer == nil {
			c, err = Seq2Bit(iter.kmer)
		} else {
			c, err = MustEncodeFromFormerKmer(iter.kmer, iter.preCode, iter.k)
		}
		iter.first = false

		if err != nil {
			// Illegal base somewhere in this window: the incremental
			// encoding chain is broken too, so the next window must
			// re-encode from scratch rather than trust preCode.
			iter.preKmer = nil
			iter.idx++
			continue
		}

		iter.preKmer, iter.preCode = iter.kmer, c
		iter.idx++
		return Canonical(c, iter.k), true
	}
	return 0, false
}

// CurrentIndex returns the 0-based start offset of the window last
// returned by Next.
func (iter *KmerIterator) CurrentIndex() int {
	return iter.idx - 1
}
