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

import "testing"

// storeOf builds a Store over k marking exactly the given sequences (and
// their revcomps) solid.
func storeOf(t *testing.T, k int, seqs ...string) *Store {
	t.Helper()
	solid := make(map[uint64]bool)
	for _, s := range seqs {
		code, err := Seq2Bit([]byte(s))
		if err != nil {
			t.Fatalf("Seq2Bit(%q): %v", s, err)
		}
		solid[IndexOf(code, k)] = true
	}
	return NewStore(k, func(i uint64) bool { return solid[i] })
}

func codeOf(t *testing.T, s string) KCode {
	t.Helper()
	code, err := Seq2Bit([]byte(s))
	if err != nil {
		t.Fatalf("Seq2Bit(%q): %v", s, err)
	}
	return code
}

func TestOracleSuccessorsImmediate(t *testing.T) {
	k := 5
	// ACGTA -> CGTAC is an immediate (depth 1) right extension.
	store := storeOf(t, k, "ACGTA", "CGTAC")
	oracle := NewOracle(store, MaxDeepDefault)

	x := codeOf(t, "ACGTA")
	candidates, depth, ok := oracle.Successors(x)
	if !ok {
		t.Fatal("expected a successor")
	}
	if depth != 1 {
		t.Errorf("depth = %d, want 1", depth)
	}
	want := codeOf(t, "CGTAC")
	found := false
	for _, c := range candidates {
		if c == want {
			found = true
		}
	}
	if !found {
		t.Errorf("successors %v did not contain %v", candidates, want)
	}
}

func TestOracleSuccessorsGapTolerant(t *testing.T) {
	k := 5
	// Only a depth-2 successor is solid: skip one non-solid intermediate.
	store := storeOf(t, k, "ACGTA", "GTACC")
	oracle := NewOracle(store, MaxDeepDefault)

	x := codeOf(t, "ACGTA")
	_, depth, ok := oracle.Successors(x)
	if !ok {
		t.Fatal("expected a gap-tolerant successor")
	}
	if depth != 2 {
		t.Errorf("depth = %d, want 2", depth)
	}
}

func TestOracleSuccessorsNoneWithinMaxDeep(t *testing.T) {
	k := 5
	store := storeOf(t, k, "ACGTA")
	oracle := NewOracle(store, 1)

	x := codeOf(t, "ACGTA")
	_, _, ok := oracle.Successors(x)
	if ok {
		t.Error("expected no successor within maxDeep=1")
	}
}

func TestOraclePredecessorsMirrorsSuccessors(t *testing.T) {
	k := 5
	store := storeOf(t, k, "ACGTA", "CGTAC")
	oracle := NewOracle(store, MaxDeepDefault)

	right := codeOf(t, "CGTAC")
	candidates, depth, ok := oracle.Predecessors(right)
	if !ok {
		t.Fatal("expected a predecessor")
	}
	if depth != 1 {
		t.Errorf("depth = %d, want 1", depth)
	}
	want := codeOf(t, "ACGTA")
	found := false
	for _, c := range candidates {
		if c == want {
			found = true
		}
	}
	if !found {
		t.Errorf("predecessors %v did not contain %v", candidates, want)
	}
}

func TestOracleExcludesSelfAndPalindrome(t *testing.T) {
	k := 5
	store := storeOf(t, k, "ACGTA")
	oracle := NewOracle(store, MaxDeepDefault)
	x := codeOf(t, "ACGTA")

	candidates, _, ok := oracle.Successors(x)
	if ok {
		for _, c := range candidates {
			if c == x || c == RevComp(x, k) {
				t.Errorf("successor set included self/palindrome: %v", c)
			}
		}
	}
}

func TestNewOracleClampsMaxDeep(t *testing.T) {
	store := storeOf(t, 5, "ACGTA")

	o := NewOracle(store, 0)
	if o.MaxDeep() != 1 {
		t.Errorf("maxDeep clamped low = %d, want 1", o.MaxDeep())
	}

	o = NewOracle(store, 100)
	if o.MaxDeep() != 4 {
		t.Errorf("maxDeep clamped high = %d, want %d", o.MaxDeep(), 5-1)
	}
}
