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
	"strings"
	"testing"
)

// kmersOf returns every overlapping length-k window of seq.
func kmersOf(seq string, k int) []string {
	var out []string
	for i := 0; i+k <= len(seq); i++ {
		out = append(out, seq[i:i+k])
	}
	return out
}

func TestExtractUnitigsLinearCoversWholeSequence(t *testing.T) {
	k := 5
	seq := "ACGTACGT"
	store := storeOf(t, k, kmersOf(seq, k)...)
	oracle := NewOracle(store, MaxDeepDefault)

	tigs := ExtractUnitigs(oracle)
	if len(tigs) != 1 {
		t.Fatalf("got %d unitigs, want 1", len(tigs))
	}
	if tigs[0].Len() != len(seq) {
		t.Errorf("unitig length = %d, want %d", tigs[0].Len(), len(seq))
	}
	if tigs[0].Circular {
		t.Error("linear unitig reported as circular")
	}
}

func TestExtractUnitigsDropsIsolatedTrivialKmer(t *testing.T) {
	k := 5
	store := storeOf(t, k, "AAAAA")
	oracle := NewOracle(store, MaxDeepDefault)

	tigs := ExtractUnitigs(oracle)
	if len(tigs) != 0 {
		t.Fatalf("got %d unitigs, want 0 (isolated k-mer with <2 neighbors on both sides)", len(tigs))
	}
}

func TestExtractUnitigsDeterministicAcrossRuns(t *testing.T) {
	k := 5
	seq := "ACGTACGTTGCA"
	store := storeOf(t, k, kmersOf(seq, k)...)

	first := ExtractUnitigs(NewOracle(store, MaxDeepDefault))
	second := ExtractUnitigs(NewOracle(store, MaxDeepDefault))

	if len(first) != len(second) {
		t.Fatalf("non-deterministic unitig count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if string(first[i].Seq) != string(second[i].Seq) {
			t.Errorf("non-deterministic unitig %d: %q vs %q", i, first[i].Seq, second[i].Seq)
		}
	}
}

// TestExtractUnitigsScenario1MutualPairWithExcludedEnds is the spec's worked
// scenario 1 (ACGTACGTAC, k=5, max_deep=1): ACGTA and CGTAC are mutual
// successor/predecessor, but predecessors(ACGTA) and successors(CGTAC) are
// each excluded by the self/revcomp rule (ACGTA's revcomp is TACGT, CGTAC's
// is GTACG). A walk that required both directions' query to succeed before
// advancing could never leave the seed and produced zero unitigs; requiring
// only the current direction's cardinality must still walk ACGTA -> CGTAC.
func TestExtractUnitigsScenario1MutualPairWithExcludedEnds(t *testing.T) {
	k := 5
	seq := "ACGTACGTAC"
	store := storeOf(t, k, kmersOf(seq, k)...)
	oracle := NewOracle(store, 1)

	tigs := ExtractUnitigs(oracle)
	if len(tigs) != 1 {
		t.Fatalf("got %d unitigs, want 1 (regression: a joint direction check yields 0)", len(tigs))
	}
	if tigs[0].Circular {
		t.Error("ACGTA-CGTAC pair reported as circular")
	}
	if tigs[0].Len() != 6 {
		t.Errorf("unitig length = %d, want 6 (ACGTAC: the two distinct canonical k-mers this input carries, once revcomp pairs collapse)", tigs[0].Len())
	}
}

// TestExtractUnitigsScenario2Circular builds a clean 4 k-mer cycle
// (AAGCA -> AGCAA -> GCAAG -> CAAGC -> AAGCA) with no self/revcomp
// collisions among its members, matching the spec's scenario 2: the walk
// must close on itself rather than run off the end of the k-mer space.
func TestExtractUnitigsScenario2Circular(t *testing.T) {
	k := 5
	store := storeOf(t, k, "AAGCA", "AGCAA", "GCAAG", "CAAGC")
	oracle := NewOracle(store, 1)

	tigs := ExtractUnitigs(oracle)
	if len(tigs) != 1 {
		t.Fatalf("got %d unitigs, want 1", len(tigs))
	}
	tig := tigs[0]
	if !tig.Circular {
		t.Error("4-cycle reported as linear")
	}
	if tig.Begin != tig.End {
		t.Errorf("circular unitig has Begin=%v != End=%v", tig.Begin, tig.End)
	}
	if want := len("AAGCA") + 3; tig.Len() != want {
		t.Errorf("unitig length = %d, want %d (4 k-mers, one base added per hop)", tig.Len(), want)
	}
}

// TestExtractUnitigsScenario3Branch exercises a true out-degree-2 branch:
// a shared head AACGT diverging into ACGTA/CGTAA on one side and
// ACGTC/CGTCC on the other. Regardless of which k-mer the global scan
// happens to seed first (and so which walk, if any, absorbs the shared
// head AACGT), the two divergent tails can never end up in the same tig.
func TestExtractUnitigsScenario3Branch(t *testing.T) {
	k := 5
	store := storeOf(t, k,
		"AAAAA", "AAAAC", "AAACG", "AACGT",
		"ACGTA", "CGTAA",
		"ACGTC", "CGTCC",
	)
	oracle := NewOracle(store, 1)

	tigs := ExtractUnitigs(oracle)
	if len(tigs) < 2 {
		t.Fatalf("got %d unitigs, want at least 2 (the two divergent tails)", len(tigs))
	}

	tailOf := func(sub string) *Tig {
		for _, tig := range tigs {
			if strings.Contains(string(tig.Seq), sub) {
				return tig
			}
		}
		return nil
	}

	tail1 := tailOf("CGTAA")
	tail2 := tailOf("CGTCC")
	if tail1 == nil || tail2 == nil {
		t.Fatalf("expected one tig to contain CGTAA and another CGTCC; got tigs %v", seqs(tigs))
	}
	if tail1 == tail2 {
		t.Error("both branches of a Y-junction ended up in the same unitig")
	}
}

// TestExtractUnitigsScenario4GapTolerant is the spec's scenario 4: a single
// solid k-mer (TGCAT) is missing from the middle of an otherwise linear
// chain. At max_deep=2 the oracle must bridge the gap by overlap, producing
// one unitig that still spans every base of the ungapped original.
func TestExtractUnitigsScenario4GapTolerant(t *testing.T) {
	k := 5
	store := storeOf(t, k, "ACGTG", "CGTGC", "GTGCA", "GCATC", "CATCG", "ATCGA")
	oracle := NewOracle(store, 2)

	tigs := ExtractUnitigs(oracle)
	if len(tigs) != 1 {
		t.Fatalf("got %d unitigs, want 1 (gap should be bridged, not split)", len(tigs))
	}
	if tigs[0].Circular {
		t.Error("linear gapped unitig reported as circular")
	}
	if want := 11; tigs[0].Len() != want {
		t.Errorf("unitig length = %d, want %d (ACGTGCATCGA)", tigs[0].Len(), want)
	}
}

// TestExtractUnitigsScenario5ParallelBubble builds a bubble: AACGT forks
// into two paths that each run five k-mers before reconverging on TTTTT.
// The two paths never share an internal k-mer, so extraction must keep
// them as separate unitigs no matter which end (if either) absorbs the
// shared fork/merge nodes.
func TestExtractUnitigsScenario5ParallelBubble(t *testing.T) {
	k := 5
	store := storeOf(t, k,
		"AACGT",
		"ACGTA", "CGTAT", "GTATT", "TATTT", "ATTTT",
		"ACGTC", "CGTCT", "GTCTT", "TCTTT", "CTTTT",
		"TTTTT",
	)
	oracle := NewOracle(store, 1)

	tigs := ExtractUnitigs(oracle)
	if len(tigs) < 2 {
		t.Fatalf("got %d unitigs, want at least 2 (the two bubble arms)", len(tigs))
	}

	pathOf := func(sub string) *Tig {
		for _, tig := range tigs {
			if strings.Contains(string(tig.Seq), sub) {
				return tig
			}
		}
		return nil
	}

	arm1 := pathOf("TATTT")
	arm2 := pathOf("TCTTT")
	if arm1 == nil || arm2 == nil {
		t.Fatalf("expected one tig to contain TATTT and another TCTTT; got tigs %v", seqs(tigs))
	}
	if arm1 == arm2 {
		t.Error("both bubble arms ended up in the same unitig")
	}
}

func seqs(tigs []*Tig) []string {
	out := make([]string, len(tigs))
	for i, tig := range tigs {
		out[i] = string(tig.Seq)
	}
	return out
}
