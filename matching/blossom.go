package matching

// WeightedEdge is an edge of the auxiliary matching graph over vertex indices.
type WeightedEdge struct {
	I, J   int
	Weight int64
}

// MaxWeightMatching computes a maximum-weight matching of the general graph
// given by edges, using Edmonds' blossom algorithm with primal-dual updates.
// With maxCardinality set, the result is a maximum-weight matching among the
// matchings of maximum cardinality.
//
// It returns mate, where mate[v] is the vertex matched to v or -1.
// Vertices are 0..n-1 with n = 1 + the largest index in edges.
// All arithmetic is integral; weights must fit comfortably in int64.
//
// Complexity: O(n³).
func MaxWeightMatching(edges []WeightedEdge, maxCardinality bool) []int {
	if len(edges) == 0 {
		return nil
	}
	m := newBlossomState(edges, maxCardinality)
	m.solve()

	out := make([]int, m.nvertex)
	for v := range out {
		out[v] = -1
		if m.mate[v] >= 0 {
			out[v] = m.endpoint[m.mate[v]]
		}
	}

	return out
}

// blossomState carries the primal-dual bookkeeping. Vertices are 0..n-1,
// non-trivial blossoms n..2n-1. Edge k has endpoints 2k and 2k+1; p^1 is the
// opposite endpoint of p.
type blossomState struct {
	edges          []WeightedEdge
	nvertex        int
	maxCardinality bool

	endpoint  []int
	neighbend [][]int
	mate      []int

	label        []int // 0 free, 1 S, 2 T; bit 4 marks scanBlossom
	labelend     []int
	inblossom    []int
	parent       []int
	childs       [][]int
	base         []int
	endps        [][]int
	bestedge     []int
	bestedges    [][]int
	hasBestEdges []bool
	unused       []int
	dualvar      []int64
	allowedge    []bool
	queue        []int
}

func newBlossomState(edges []WeightedEdge, maxCardinality bool) *blossomState {
	n := 0
	var maxWeight int64
	for _, e := range edges {
		if e.I >= n {
			n = e.I + 1
		}
		if e.J >= n {
			n = e.J + 1
		}
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}

	s := &blossomState{
		edges:          edges,
		nvertex:        n,
		maxCardinality: maxCardinality,
		endpoint:       make([]int, 2*len(edges)),
		neighbend:      make([][]int, n),
		mate:           filled(n, -1),
		label:          make([]int, 2*n),
		labelend:       filled(2*n, -1),
		inblossom:      make([]int, n),
		parent:         filled(2*n, -1),
		childs:         make([][]int, 2*n),
		base:           filled(2*n, -1),
		endps:          make([][]int, 2*n),
		bestedge:       filled(2*n, -1),
		bestedges:      make([][]int, 2*n),
		hasBestEdges:   make([]bool, 2*n),
		dualvar:        make([]int64, 2*n),
		allowedge:      make([]bool, len(edges)),
	}
	for k, e := range edges {
		s.endpoint[2*k] = e.I
		s.endpoint[2*k+1] = e.J
		s.neighbend[e.I] = append(s.neighbend[e.I], 2*k+1)
		s.neighbend[e.J] = append(s.neighbend[e.J], 2*k)
	}
	for v := 0; v < n; v++ {
		s.inblossom[v] = v
		s.base[v] = v
		s.dualvar[v] = maxWeight
	}
	for b := n; b < 2*n; b++ {
		s.unused = append(s.unused, b)
	}

	return s
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// at indexes a cyclic child list, accepting negative positions.
func at(list []int, j int) int {
	n := len(list)

	return list[((j%n)+n)%n]
}

func indexOf(list []int, x int) int {
	for i, v := range list {
		if v == x {
			return i
		}
	}

	return -1
}

func (s *blossomState) slack(k int) int64 {
	e := s.edges[k]

	return s.dualvar[e.I] + s.dualvar[e.J] - 2*e.Weight
}

// leaves returns every vertex contained in blossom b.
func (s *blossomState) leaves(b int) []int {
	if b < s.nvertex {
		return []int{b}
	}
	var out []int
	for _, t := range s.childs[b] {
		out = append(out, s.leaves(t)...)
	}

	return out
}

// assignLabel labels vertex w (and its top-level blossom) with t, reached via endpoint p.
func (s *blossomState) assignLabel(w, t, p int) {
	b := s.inblossom[w]
	s.label[w], s.label[b] = t, t
	s.labelend[w], s.labelend[b] = p, p
	s.bestedge[w], s.bestedge[b] = -1, -1
	switch t {
	case 1:
		s.queue = append(s.queue, s.leaves(b)...)
	case 2:
		base := s.base[b]
		s.assignLabel(s.endpoint[s.mate[base]], 1, s.mate[base]^1)
	}
}

// scanBlossom traces back from v and w to find a new blossom base, or -1
// when the paths reach two different roots (an augmenting path).
func (s *blossomState) scanBlossom(v, w int) int {
	var path []int
	base := -1
	for v != -1 || w != -1 {
		b := s.inblossom[v]
		if s.label[b]&4 != 0 {
			base = s.base[b]
			break
		}
		path = append(path, b)
		s.label[b] = 5
		if s.labelend[b] == -1 {
			v = -1
		} else {
			v = s.endpoint[s.labelend[b]]
			b = s.inblossom[v]
			v = s.endpoint[s.labelend[b]]
		}
		if w != -1 {
			v, w = w, v
		}
	}
	for _, b := range path {
		s.label[b] = 1
	}

	return base
}

// addBlossom contracts the odd cycle closed by edge k into a new S-blossom with the given base.
func (s *blossomState) addBlossom(base, k int) {
	v, w := s.edges[k].I, s.edges[k].J
	bb := s.inblossom[base]
	bv := s.inblossom[v]
	bw := s.inblossom[w]

	b := s.unused[len(s.unused)-1]
	s.unused = s.unused[:len(s.unused)-1]
	s.base[b] = base
	s.parent[b] = -1
	s.parent[bb] = b

	var path, endps []int
	for bv != bb {
		s.parent[bv] = b
		path = append(path, bv)
		endps = append(endps, s.labelend[bv])
		v = s.endpoint[s.labelend[bv]]
		bv = s.inblossom[v]
	}
	path = append(path, bb)
	reverse(path)
	reverse(endps)
	endps = append(endps, 2*k)
	for bw != bb {
		s.parent[bw] = b
		path = append(path, bw)
		endps = append(endps, s.labelend[bw]^1)
		w = s.endpoint[s.labelend[bw]]
		bw = s.inblossom[w]
	}
	s.childs[b] = path
	s.endps[b] = endps

	s.label[b] = 1
	s.labelend[b] = s.labelend[bb]
	s.dualvar[b] = 0
	for _, lv := range s.leaves(b) {
		if s.label[s.inblossom[lv]] == 2 {
			s.queue = append(s.queue, lv)
		}
		s.inblossom[lv] = b
	}

	bestedgeto := filled(2*s.nvertex, -1)
	for _, sub := range path {
		var nblists [][]int
		if !s.hasBestEdges[sub] {
			for _, lv := range s.leaves(sub) {
				list := make([]int, 0, len(s.neighbend[lv]))
				for _, p := range s.neighbend[lv] {
					list = append(list, p/2)
				}
				nblists = append(nblists, list)
			}
		} else {
			nblists = [][]int{s.bestedges[sub]}
		}
		for _, list := range nblists {
			for _, kk := range list {
				j := s.edges[kk].J
				if s.inblossom[j] == b {
					j = s.edges[kk].I
				}
				bj := s.inblossom[j]
				if bj != b && s.label[bj] == 1 &&
					(bestedgeto[bj] == -1 || s.slack(kk) < s.slack(bestedgeto[bj])) {
					bestedgeto[bj] = kk
				}
			}
		}
		s.bestedges[sub] = nil
		s.hasBestEdges[sub] = false
		s.bestedge[sub] = -1
	}

	var best []int
	for _, kk := range bestedgeto {
		if kk != -1 {
			best = append(best, kk)
		}
	}
	s.bestedges[b] = best
	s.hasBestEdges[b] = true
	s.bestedge[b] = -1
	for _, kk := range best {
		if s.bestedge[b] == -1 || s.slack(kk) < s.slack(s.bestedge[b]) {
			s.bestedge[b] = kk
		}
	}
}

// expandBlossom dissolves blossom b, relabeling its children when it is a
// T-blossom expanded mid-stage.
func (s *blossomState) expandBlossom(b int, endstage bool) {
	for _, sub := range s.childs[b] {
		s.parent[sub] = -1
		switch {
		case sub < s.nvertex:
			s.inblossom[sub] = sub
		case endstage && s.dualvar[sub] == 0:
			s.expandBlossom(sub, endstage)
		default:
			for _, lv := range s.leaves(sub) {
				s.inblossom[lv] = sub
			}
		}
	}

	if !endstage && s.label[b] == 2 {
		childs, endps := s.childs[b], s.endps[b]
		entrychild := s.inblossom[s.endpoint[s.labelend[b]^1]]
		j := indexOf(childs, entrychild)
		var jstep, endptrick int
		if j&1 != 0 {
			j -= len(childs)
			jstep, endptrick = 1, 0
		} else {
			jstep, endptrick = -1, 1
		}

		p := s.labelend[b]
		for j != 0 {
			s.label[s.endpoint[p^1]] = 0
			s.label[s.endpoint[at(endps, j-endptrick)^endptrick^1]] = 0
			s.assignLabel(s.endpoint[p^1], 2, p)
			s.allowedge[at(endps, j-endptrick)/2] = true
			j += jstep
			p = at(endps, j-endptrick) ^ endptrick
			s.allowedge[p/2] = true
			j += jstep
		}

		bv := at(childs, j)
		s.label[s.endpoint[p^1]], s.label[bv] = 2, 2
		s.labelend[s.endpoint[p^1]], s.labelend[bv] = p, p
		s.bestedge[bv] = -1
		j += jstep
		for at(childs, j) != entrychild {
			bv = at(childs, j)
			if s.label[bv] == 1 {
				j += jstep
				continue
			}
			labeled := -1
			for _, lv := range s.leaves(bv) {
				if s.label[lv] != 0 {
					labeled = lv
					break
				}
			}
			if labeled != -1 {
				s.label[labeled] = 0
				s.label[s.endpoint[s.mate[s.base[bv]]]] = 0
				s.assignLabel(labeled, 2, s.labelend[labeled])
			}
			j += jstep
		}
	}

	s.label[b], s.labelend[b] = -1, -1
	s.childs[b], s.endps[b] = nil, nil
	s.base[b] = -1
	s.bestedges[b] = nil
	s.hasBestEdges[b] = false
	s.bestedge[b] = -1
	s.unused = append(s.unused, b)
}

// augmentBlossom rotates blossom b so that vertex v becomes its base,
// flipping matched edges along the even-length path inside b.
func (s *blossomState) augmentBlossom(b, v int) {
	t := v
	for s.parent[t] != b {
		t = s.parent[t]
	}
	if t >= s.nvertex {
		s.augmentBlossom(t, v)
	}

	childs, endps := s.childs[b], s.endps[b]
	i := indexOf(childs, t)
	j := i
	var jstep, endptrick int
	if i&1 != 0 {
		j -= len(childs)
		jstep, endptrick = 1, 0
	} else {
		jstep, endptrick = -1, 1
	}
	for j != 0 {
		j += jstep
		t = at(childs, j)
		p := at(endps, j-endptrick) ^ endptrick
		if t >= s.nvertex {
			s.augmentBlossom(t, s.endpoint[p])
		}
		j += jstep
		t = at(childs, j)
		if t >= s.nvertex {
			s.augmentBlossom(t, s.endpoint[p^1])
		}
		s.mate[s.endpoint[p]] = p ^ 1
		s.mate[s.endpoint[p^1]] = p
	}

	s.childs[b] = append(append([]int(nil), childs[i:]...), childs[:i]...)
	s.endps[b] = append(append([]int(nil), endps[i:]...), endps[:i]...)
	s.base[b] = s.base[s.childs[b][0]]
}

// augmentMatching flips the augmenting path through edge k between two S-vertices.
func (s *blossomState) augmentMatching(k int) {
	v, w := s.edges[k].I, s.edges[k].J
	for _, sp := range [2][2]int{{v, 2*k + 1}, {w, 2 * k}} {
		sv, p := sp[0], sp[1]
		for {
			bs := s.inblossom[sv]
			if bs >= s.nvertex {
				s.augmentBlossom(bs, sv)
			}
			s.mate[sv] = p
			if s.labelend[bs] == -1 {
				break
			}
			t := s.endpoint[s.labelend[bs]]
			bt := s.inblossom[t]
			sv = s.endpoint[s.labelend[bt]]
			j := s.endpoint[s.labelend[bt]^1]
			if bt >= s.nvertex {
				s.augmentBlossom(bt, j)
			}
			s.mate[j] = s.labelend[bt]
			p = s.labelend[bt] ^ 1
		}
	}
}

// solve runs up to n stages; each stage either augments the matching or proves optimality.
func (s *blossomState) solve() {
	n := s.nvertex
	for stage := 0; stage < n; stage++ {
		for i := range s.label {
			s.label[i] = 0
			s.bestedge[i] = -1
		}
		for b := n; b < 2*n; b++ {
			s.bestedges[b] = nil
			s.hasBestEdges[b] = false
		}
		for k := range s.allowedge {
			s.allowedge[k] = false
		}
		s.queue = s.queue[:0]

		for v := 0; v < n; v++ {
			if s.mate[v] == -1 && s.label[s.inblossom[v]] == 0 {
				s.assignLabel(v, 1, -1)
			}
		}

		if !s.runStage() {
			break
		}

		for b := n; b < 2*n; b++ {
			if s.parent[b] == -1 && s.base[b] >= 0 && s.label[b] == 1 && s.dualvar[b] == 0 {
				s.expandBlossom(b, true)
			}
		}
	}
}

// runStage grows alternating trees and adjusts duals until an augmentation
// happens (true) or no further improvement is possible (false).
func (s *blossomState) runStage() bool {
	n := s.nvertex
	for {
		if s.scanQueue() {
			return true
		}

		deltatype := -1
		var delta int64
		deltaedge, deltablossom := -1, -1

		if !s.maxCardinality {
			deltatype = 1
			delta = minDual(s.dualvar[:n])
		}
		for v := 0; v < n; v++ {
			if s.label[s.inblossom[v]] == 0 && s.bestedge[v] != -1 {
				d := s.slack(s.bestedge[v])
				if deltatype == -1 || d < delta {
					delta, deltatype, deltaedge = d, 2, s.bestedge[v]
				}
			}
		}
		for b := 0; b < 2*n; b++ {
			if s.parent[b] == -1 && s.label[b] == 1 && s.bestedge[b] != -1 {
				d := s.slack(s.bestedge[b]) / 2
				if deltatype == -1 || d < delta {
					delta, deltatype, deltaedge = d, 3, s.bestedge[b]
				}
			}
		}
		for b := n; b < 2*n; b++ {
			if s.base[b] >= 0 && s.parent[b] == -1 && s.label[b] == 2 &&
				(deltatype == -1 || s.dualvar[b] < delta) {
				delta, deltatype, deltablossom = s.dualvar[b], 4, b
			}
		}
		if deltatype == -1 {
			deltatype = 1
			delta = minDual(s.dualvar[:n])
			if delta < 0 {
				delta = 0
			}
		}

		for v := 0; v < n; v++ {
			switch s.label[s.inblossom[v]] {
			case 1:
				s.dualvar[v] -= delta
			case 2:
				s.dualvar[v] += delta
			}
		}
		for b := n; b < 2*n; b++ {
			if s.base[b] >= 0 && s.parent[b] == -1 {
				switch s.label[b] {
				case 1:
					s.dualvar[b] += delta
				case 2:
					s.dualvar[b] -= delta
				}
			}
		}

		switch deltatype {
		case 1:
			return false
		case 2:
			s.allowedge[deltaedge] = true
			i, j := s.edges[deltaedge].I, s.edges[deltaedge].J
			if s.label[s.inblossom[i]] == 0 {
				i = j
			}
			s.queue = append(s.queue, i)
		case 3:
			s.allowedge[deltaedge] = true
			s.queue = append(s.queue, s.edges[deltaedge].I)
		case 4:
			s.expandBlossom(deltablossom, false)
		}
	}
}

// scanQueue processes S-vertices until the queue drains or an augmenting path is applied.
func (s *blossomState) scanQueue() bool {
	for len(s.queue) > 0 {
		v := s.queue[len(s.queue)-1]
		s.queue = s.queue[:len(s.queue)-1]

		for _, p := range s.neighbend[v] {
			k := p / 2
			w := s.endpoint[p]
			if s.inblossom[v] == s.inblossom[w] {
				continue
			}
			var kslack int64
			if !s.allowedge[k] {
				kslack = s.slack(k)
				if kslack <= 0 {
					s.allowedge[k] = true
				}
			}

			switch {
			case s.allowedge[k]:
				switch {
				case s.label[s.inblossom[w]] == 0:
					s.assignLabel(w, 2, p^1)
				case s.label[s.inblossom[w]] == 1:
					if base := s.scanBlossom(v, w); base >= 0 {
						s.addBlossom(base, k)
					} else {
						s.augmentMatching(k)
						return true
					}
				case s.label[w] == 0:
					s.label[w] = 2
					s.labelend[w] = p ^ 1
				}
			case s.label[s.inblossom[w]] == 1:
				b := s.inblossom[v]
				if s.bestedge[b] == -1 || kslack < s.slack(s.bestedge[b]) {
					s.bestedge[b] = k
				}
			case s.label[w] == 0:
				if s.bestedge[w] == -1 || kslack < s.slack(s.bestedge[w]) {
					s.bestedge[w] = k
				}
			}
		}
	}

	return false
}

func minDual(ds []int64) int64 {
	m := ds[0]
	for _, d := range ds[1:] {
		if d < m {
			m = d
		}
	}

	return m
}

func reverse(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
