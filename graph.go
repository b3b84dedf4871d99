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
	"fmt"

	"github.com/twotwotwo/sorts"
)

// EdgeTag labels a Tig-Endpoint or Endpoint-Endpoint edge of a
// UnitigGraph.
type EdgeTag int

const (
	TagBegin EdgeTag = iota
	TagEnd
	TagBoth
	TagKmer
)

func (t EdgeTag) String() string {
	switch t {
	case TagBegin:
		return "Begin"
	case TagEnd:
		return "End"
	case TagBoth:
		return "Both"
	case TagKmer:
		return "Kmer"
	default:
		return "?"
	}
}

type tigEdge struct {
	tigID int
	tag   EdgeTag
}

type idPair [2]int

func normalizeIDPair(a, b int) idPair {
	if a <= b {
		return idPair{a, b}
	}
	return idPair{b, a}
}

// UnitigGraph is the undirected multigraph of §3: Tig nodes and Endpoint
// nodes (canonical k-mers), linked by Begin/End/Both/Kmer-tagged edges.
type UnitigGraph struct {
	k    int
	tigs []*Tig

	tigEdges  map[KCode][]tigEdge   // endpoint -> tigs terminating there
	kmerEdges map[KCode]map[KCode]bool

	endsToTig     map[idPair]bool
	parallelPairs map[idPair]bool
}

// BuildUnitigGraph builds the graph from the tigs extracted by
// ExtractUnitigs, then runs the endpoint-to-endpoint augmentation pass of
// §4.6.
func BuildUnitigGraph(oracle *Oracle, tigs []*Tig) *UnitigGraph {
	g := &UnitigGraph{
		k:             oracle.K(),
		tigs:          tigs,
		tigEdges:      make(map[KCode][]tigEdge),
		kmerEdges:     make(map[KCode]map[KCode]bool),
		endsToTig:     make(map[idPair]bool),
		parallelPairs: make(map[idPair]bool),
	}

	endsSeen := make(map[[2]KCode][]int)
	for _, t := range tigs {
		g.addTigEndpointEdge(t.ID, t.Begin, TagBegin)
		g.addTigEndpointEdge(t.ID, t.End, TagEnd)

		key := normalizeEndpointPair(t.Begin, t.End)
		endsSeen[key] = append(endsSeen[key], t.ID)
	}

	for _, ids := range endsSeen {
		if len(ids) < 2 {
			continue
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				pair := normalizeIDPair(ids[i], ids[j])
				g.parallelPairs[pair] = true
			}
		}
	}

	g.augment(oracle)

	return g
}

func normalizeEndpointPair(a, b KCode) [2]KCode {
	if a <= b {
		return [2]KCode{a, b}
	}
	return [2]KCode{b, a}
}

func (g *UnitigGraph) addTigEndpointEdge(tigID int, endpoint KCode, tag EdgeTag) {
	edges := g.tigEdges[endpoint]
	for i, e := range edges {
		if e.tigID != tigID {
			continue
		}
		if e.tag != tag {
			edges[i].tag = TagBoth
		}
		g.tigEdges[endpoint] = edges
		return
	}
	g.tigEdges[endpoint] = append(edges, tigEdge{tigID: tigID, tag: tag})
}

// augment adds Kmer-tagged Endpoint-Endpoint edges wherever the oracle
// finds biological adjacency between two distinct endpoint k-mers,
// recovering connectivity the per-tig walk refused to cross because it
// would have required branching.
func (g *UnitigGraph) augment(oracle *Oracle) {
	for e := range g.tigEdges {
		var neighbors []KCode
		if succs, _, ok := oracle.Successors(e); ok {
			neighbors = append(neighbors, succs...)
		}
		if preds, _, ok := oracle.Predecessors(e); ok {
			neighbors = append(neighbors, preds...)
		}
		for _, n := range neighbors {
			c := Canonical(n, g.k)
			if c == e {
				continue
			}
			if _, isEndpoint := g.tigEdges[c]; !isEndpoint {
				continue
			}
			g.addKmerEdge(e, c)
		}
	}
}

func (g *UnitigGraph) addKmerEdge(a, b KCode) {
	if g.kmerEdges[a] == nil {
		g.kmerEdges[a] = make(map[KCode]bool)
	}
	if g.kmerEdges[b] == nil {
		g.kmerEdges[b] = make(map[KCode]bool)
	}
	g.kmerEdges[a][b] = true
	g.kmerEdges[b][a] = true
}

// Link is an oriented connection between two unitigs, recovered by
// traversing one or two hops through the Endpoint layer.
type Link struct {
	ID1   int
	Sign1 byte
	ID2   int
	Sign2 byte
}

func (l Link) key() string {
	return fmt.Sprintf("%d%c%d%c", l.ID1, l.Sign1, l.ID2, l.Sign2)
}

// linkSigns maps a pair of endpoint-role tags to the orientation signs of
// §4.6's table. Both must be resolved to Begin or End before lookup;
// TagBoth is tried as both.
var linkSigns = map[[2]EdgeTag][2]byte{
	{TagBegin, TagBegin}: {'-', '+'},
	{TagBegin, TagEnd}:   {'-', '-'},
	{TagEnd, TagBegin}:   {'+', '+'},
	{TagEnd, TagEnd}:     {'+', '-'},
}

func roleOptions(tag EdgeTag) []EdgeTag {
	if tag == TagBoth {
		return []EdgeTag{TagBegin, TagEnd}
	}
	return []EdgeTag{tag}
}

// Links enumerates Tig-Endpoint-Tig and Tig-Endpoint-Endpoint-Tig paths,
// deduplicates them, drops any pair flagged as parallel, and returns them
// sorted for deterministic emission.
func (g *UnitigGraph) Links() []Link {
	seen := make(map[string]bool)
	var links []Link

	emit := func(id1 int, tag1 EdgeTag, id2 int, tag2 EdgeTag) {
		if id1 != id2 && g.parallelPairs[normalizeIDPair(id1, id2)] {
			return
		}
		for _, r1 := range roleOptions(tag1) {
			for _, r2 := range roleOptions(tag2) {
				signs, ok := linkSigns[[2]EdgeTag{r1, r2}]
				if !ok {
					continue
				}
				l := Link{ID1: id1, Sign1: signs[0], ID2: id2, Sign2: signs[1]}
				if id1 == id2 && !g.tigs[id1].Circular {
					continue
				}
				if id1 == id2 {
					l = Link{ID1: id1, Sign1: '-', ID2: id1, Sign2: '+'}
				}
				if seen[l.key()] {
					continue
				}
				seen[l.key()] = true
				links = append(links, l)
			}
		}
	}

	for endpoint, edges := range g.tigEdges {
		// Tig - Endpoint - Tig
		for i := 0; i < len(edges); i++ {
			for j := 0; j < len(edges); j++ {
				if i == j && edges[i].tag != TagBoth {
					// a circular tig's single Both-tagged edge is the
					// only case where a tig legitimately meets itself
					// at one endpoint.
					continue
				}
				emit(edges[i].tigID, edges[i].tag, edges[j].tigID, edges[j].tag)
			}
		}
		// Tig - Endpoint - Endpoint - Tig
		for other := range g.kmerEdges[endpoint] {
			otherEdges := g.tigEdges[other]
			for _, e1 := range edges {
				for _, e2 := range otherEdges {
					emit(e1.tigID, e1.tag, e2.tigID, e2.tag)
				}
			}
		}
	}

	sorts.Sort(linkSlice(links))
	return links
}

type linkSlice []Link

func (s linkSlice) Len() int      { return len(s) }
func (s linkSlice) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s linkSlice) Less(i, j int) bool {
	a, b := s[i], s[j]
	if a.ID1 != b.ID1 {
		return a.ID1 < b.ID1
	}
	if a.Sign1 != b.Sign1 {
		return a.Sign1 < b.Sign1
	}
	if a.ID2 != b.ID2 {
		return a.ID2 < b.ID2
	}
	return a.Sign2 < b.Sign2
}
