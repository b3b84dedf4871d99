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
	"testing"
)

func TestKmerIteratorBasic(t *testing.T) {
	s := "ACGTACGT"
	k := 3
	iter, err := NewKmerIterator([]byte(s), k)
	if err != nil {
		t.Fatalf("fail to create iterator: %s", err)
	}

	var codes []KCode
	for {
		code, ok := iter.Next()
		if !ok {
			break
		}
		codes = append(codes, code)
	}

	n := len(s) - k + 1
	if len(codes) != n {
		t.Errorf("expected %d windows, got %d", n, len(codes))
	}

	for i := 0; i+k <= len(s); i++ {
		want, err := Seq2Bit([]byte(s[i : i+k]))
		if err != nil {
			t.Fatalf("fail to encode reference window: %s", err)
		}
		want = Canonical(want, k)
		if codes[i] != want {
			t.Errorf("window %d: expected %v, got %v", i, want, codes[i])
		}
	}
}

func TestKmerIteratorSkipsIllegalBase(t *testing.T) {
	s := "ACGTNACGT"
	k := 3
	iter, err := NewKmerIterator([]byte(s), k)
	if err != nil {
		t.Fatalf("fail to create iterator: %s", err)
	}

	var n int
	for {
		_, ok := iter.Next()
		if !ok {
			break
		}
		n++
	}

	// windows starting at 2,3,4 all touch the N at index 4 and must be
	// skipped; only 0,1,5,6 survive.
	if n != 4 {
		t.Errorf("expected 4 surviving windows, got %d", n)
	}
}

func TestKmerIteratorShortSeq(t *testing.T) {
	if _, err := NewKmerIterator([]byte("AC"), 3); err != ErrShortSeq {
		t.Errorf("expected ErrShortSeq, got %v", err)
	}
}

func TestKmerIteratorEmptySeq(t *testing.T) {
	if _, err := NewKmerIterator(nil, 3); err != ErrEmptySeq {
		t.Errorf("expected ErrEmptySeq, got %v", err)
	}
}

func TestKmerIteratorInvalidK(t *testing.T) {
	if _, err := NewKmerIterator([]byte("ACGT"), 1); err != ErrInvalidK {
		t.Errorf("expected ErrInvalidK, got %v", err)
	}
}
