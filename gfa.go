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
	"bufio"
	"fmt"
	"io"

	"github.com/twotwotwo/sorts"
)

// WriteUnitigGFA writes the unitig graph as GFA 1.0: one H line, one S
// line per tig (sequence omitted, carried instead in the companion
// FASTA), one L line per link. Overlap is fixed at 14M, per §4.7 — the
// unitig graph does not track which depth merged any two particular
// unitigs, unlike the k-mer graph.
func WriteUnitigGFA(w io.Writer, tigs []*Tig, links []Link) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "H\tVN:Z:1.0\n"); err != nil {
		return err
	}
	for _, t := range tigs {
		if _, err := fmt.Fprintf(bw, "S\t%d\t*\tLN:i:%d\tcircular:Z:%t\n", t.ID, t.Len(), t.Circular); err != nil {
			return err
		}
	}
	for _, l := range links {
		if _, err := fmt.Fprintf(bw, "L\t%d\t%c\t%d\t%c\t14M\n", l.ID1, l.Sign1, l.ID2, l.Sign2); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteKmerGFA writes the optional per-k-mer graph: one S line per solid
// canonical k-mer carrying its reverse complement as RC:Z:/RB:i: tags,
// and one L line per predecessor/successor edge the oracle reports, with
// the overlap expressed as the gap-adjusted {k-depth}M and orientation
// signs chosen from parity, per §6.
func WriteKmerGFA(w io.Writer, oracle *Oracle) error {
	k := oracle.K()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "H\tVN:Z:1.0\n"); err != nil {
		return err
	}

	space := uint64(1) << uint(2*k)
	for raw := uint64(0); raw < space; raw++ {
		x := KCode(raw)
		if x != Canonical(x, k) || !oracle.IsSolid(x) {
			continue
		}
		rc := RevComp(x, k)
		if _, err := fmt.Fprintf(bw, "S\t%d\t%s\tRC:Z:%s\tRB:i:%d\n",
			uint64(x), Kmer2Seq(x, k), Kmer2Seq(rc, k), uint64(rc)); err != nil {
			return err
		}
	}

	var links []kmerLink

	for raw := uint64(0); raw < space; raw++ {
		x := KCode(raw)
		if x != Canonical(x, k) || !oracle.IsSolid(x) {
			continue
		}
		if succs, depth, ok := oracle.Successors(x); ok {
			for _, s := range succs {
				// "other" is the successor: parity_even(other) picks
				// (+,-), otherwise (-,+).
				sign1, sign2 := byte('-'), byte('+')
				if ParityEven(s) {
					sign1, sign2 = '+', '-'
				}
				links = append(links, kmerLink{uint64(x), uint64(s), sign1, sign2, k - depth})
			}
		}
		if preds, depth, ok := oracle.Predecessors(x); ok {
			for _, p := range preds {
				// "other" is x itself here, since the edge is
				// (predecessor, k-mer).
				sign1, sign2 := byte('-'), byte('+')
				if ParityEven(x) {
					sign1, sign2 = '+', '-'
				}
				links = append(links, kmerLink{uint64(p), uint64(x), sign1, sign2, k - depth})
			}
		}
	}

	sorts.Sort(kmerLinkSlice(links))

	for _, l := range links {
		if _, err := fmt.Fprintf(bw, "L\t%d\t%c\t%d\t%c\t%dM\n", l.a, l.sign1, l.b, l.sign2, l.overlapLen); err != nil {
			return err
		}
	}

	return bw.Flush()
}

type kmerLink struct {
	a, b       uint64
	sign1      byte
	sign2      byte
	overlapLen int
}

type kmerLinkSlice []kmerLink

func (s kmerLinkSlice) Len() int      { return len(s) }
func (s kmerLinkSlice) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s kmerLinkSlice) Less(i, j int) bool {
	a, b := s[i], s[j]
	if a.a != b.a {
		return a.a < b.a
	}
	if a.sign1 != b.sign1 {
		return a.sign1 < b.sign1
	}
	if a.b != b.b {
		return a.b < b.b
	}
	return a.sign2 < b.sign2
}
