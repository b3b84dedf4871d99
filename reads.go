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

import (
	"io"

	"github.com/shenwei356/bio/seqio/fastx"
)

// CountReadsFile streams FASTA records from path (transparently
// decompressed by fastx/xopen if it is gzip/bzip2/xz/zstd) through a
// per-k-mer abundance counter, and returns the Store of k-mers whose
// count reached abundanceMin. A k outside [2, 31] is rejected with
// ErrKOverflow; otherwise k is normalized per NormalizeK before
// counting. Non-ACGT bases, and any window touching one, are silently
// skipped rather than aborting the run (§4.8).
func CountReadsFile(path string, k int, abundanceMin uint32) (*Store, error) {
	if k < 2 || k > MaxK {
		return nil, ErrKOverflow
	}
	k = NormalizeK(k)

	reader, err := fastx.NewDefaultReader(path)
	if err != nil {
		return nil, &CantReadFileError{Path: path, Err: err}
	}

	counts := make(map[uint64]uint32)

	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, &ReadingError{Path: path, Err: err}
		}

		iter, err := NewKmerIterator(record.Seq.Seq, k)
		if err != nil {
			// a record shorter than k contributes nothing; not an error.
			continue
		}
		for {
			code, ok := iter.Next()
			if !ok {
				break
			}
			idx := IndexOf(code, k)
			counts[idx]++
		}
	}

	return NewStore(k, func(i uint64) bool {
		return counts[i] >= abundanceMin
	}), nil
}
