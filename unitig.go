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

// Tig is a maximal non-branching walk through the oracle's k-mer graph:
// a unitig.
type Tig struct {
	ID       int
	Begin    KCode // canonical k-mer of the first base of Seq
	End      KCode // canonical k-mer of the last base of Seq
	Seq      []byte
	Circular bool
}

// Len returns the number of bases in the unitig's sequence.
func (t *Tig) Len() int {
	return len(t.Seq)
}

// ExtractUnitigs walks every solid, unvisited canonical k-mer to its
// maximal non-branching path, seeding in ascending canonical-code order
// so that output is deterministic for a fixed oracle.
func ExtractUnitigs(oracle *Oracle) []*Tig {
	k := oracle.K()
	visited := NewVisitedSet(k)
	var tigs []*Tig
	space := uint64(1) << uint(2*k)

	for raw := uint64(0); raw < space; raw++ {
		x := KCode(raw)
		if x != Canonical(x, k) {
			continue // visit each revcomp pair once, through its canonical member
		}
		if !oracle.IsSolid(x) || visited.Contains(x) {
			continue
		}
		visited.Insert(x)

		seq := []byte(Kmer2Seq(x, k))
		circular := false

		curLeft := x
		nbPred := 0
		for {
			preds, depth, ok := oracle.Predecessors(curLeft)
			if !ok || len(preds) != 1 {
				if ok {
					nbPred = len(preds)
				}
				break
			}
			nbPred = len(preds)
			// The opposite direction only blocks extension when it
			// affirmatively reports branching; finding nothing there
			// (gap-tolerant probing ran out of depth) carries no
			// information and must not stop this direction's walk.
			if succs, _, okS := oracle.Successors(curLeft); okS && len(succs) != 1 {
				break
			}
			p := preds[0]
			pc := Canonical(p, k)
			if pc == Canonical(x, k) {
				// closed the loop back onto this walk's own seed: the
				// right-extension below hasn't moved yet, so the seed is
				// the other end of the walk at this point.
				circular = true
				curLeft = p
				break
			}
			if visited.Contains(pc) {
				// already claimed by a different walk: stop here, not
				// circular, this is just where the other tig begins.
				break
			}
			visited.Insert(pc)
			seq = append(append([]byte{}, kmerPrefix(p, k, depth)...), seq...)
			curLeft = p
		}

		curRight := x
		nbSucc := 0
		for {
			succs, depth, ok := oracle.Successors(curRight)
			if !ok || len(succs) != 1 {
				if ok {
					nbSucc = len(succs)
				}
				break
			}
			nbSucc = len(succs)
			if preds, _, okP := oracle.Predecessors(curRight); okP && len(preds) != 1 {
				break
			}
			s := succs[0]
			sc := Canonical(s, k)
			if sc == Canonical(curLeft, k) {
				circular = true
				curRight = s
				break
			}
			if visited.Contains(sc) {
				break
			}
			visited.Insert(sc)
			seq = append(seq, kmerSuffix(s, k, depth)...)
			curRight = s
		}

		begin := Canonical(curLeft, k)
		end := Canonical(curRight, k)
		if circular {
			end = begin
		}

		extended := curLeft != x || curRight != x
		if !extended && (nbPred < 2 || nbSucc < 2) {
			// Trivial-tig filter (§4.5): a lone k-mer with fewer than
			// two neighbors on some side is absorbed into whichever
			// neighboring unitig's walk passes through it, rather than
			// emitted as its own single-k-mer unitig. nbPred/nbSucc are
			// the degree probed at the point each extension loop broke,
			// not a value fixed before the loop ran.
			continue
		}

		tigs = append(tigs, &Tig{
			ID:       len(tigs),
			Begin:    begin,
			End:      end,
			Seq:      seq,
			Circular: circular || begin == end,
		})
	}

	return tigs
}

func kmerPrefix(code KCode, k, n int) []byte {
	return []byte(Kmer2Seq(code, k))[:n]
}

func kmerSuffix(code KCode, k, n int) []byte {
	s := []byte(Kmer2Seq(code, k))
	return s[len(s)-n:]
}
