// Package lexrank implements wikisum.SentenceRanker with LexRank, a
// graph-based centrality ranking over sentence similarity.
//
// Sentences are vectors of term frequencies weighted by inverse sentence
// frequency. Pairs whose cosine similarity reaches Threshold are joined by an
// edge weighted by that similarity, and scores are the stationary
// distribution of a damped random walk over the graph. Sentences without
// edges spread their mass uniformly.
package lexrank

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/fwojciec/wikisum"
)

// Default ranking parameters.
const (
	DefaultThreshold     = 0.1
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
)

// Ensure Ranker implements wikisum.SentenceRanker at compile time.
var _ wikisum.SentenceRanker = (*Ranker)(nil)

// Ranker ranks sentences by LexRank centrality. The zero value is not
// usable; create one with NewRanker.
type Ranker struct {
	Threshold     float64
	Damping       float64
	Tolerance     float64
	MaxIterations int

	// StopWords are ignored when building term vectors.
	StopWords map[string]struct{}
}

// NewRanker returns a Ranker with default parameters and English stop words.
func NewRanker() *Ranker {
	return &Ranker{
		Threshold:     DefaultThreshold,
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		StopWords:     EnglishStopWords,
	}
}

// Rank returns the indexes of the n highest scoring sentences in ascending
// order. Equal scores are broken by the lower index.
func (r *Ranker) Rank(sentences []string, n int) ([]int, error) {
	if n <= 0 {
		return nil, wikisum.Errorf(wikisum.EINVALID, "sentence count must be positive, got %d", n)
	}
	if len(sentences) == 0 {
		return nil, wikisum.Errorf(wikisum.EINVALID, "no sentences to rank")
	}
	if len(sentences) <= n {
		idx := make([]int, len(sentences))
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}

	scores, err := r.Scores(sentences)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	top := order[:n]
	sort.Ints(top)
	return top, nil
}

// Scores returns the LexRank score of every sentence. Scores sum to 1.
// If stop word removal leaves no terms at all, every word is used instead.
func (r *Ranker) Scores(sentences []string) ([]float64, error) {
	vectors := r.vectorize(sentences, r.StopWords)
	if allEmpty(vectors) && len(r.StopWords) > 0 {
		vectors = r.vectorize(sentences, nil)
	}
	if allEmpty(vectors) {
		return nil, wikisum.Errorf(wikisum.EINVALID, "sentences contain no rankable terms")
	}

	return r.walk(r.graph(vectors)), nil
}

func allEmpty(vectors [][]term) bool {
	for _, v := range vectors {
		if len(v) > 0 {
			return false
		}
	}
	return true
}

// term is one component of a sparse sentence vector.
type term struct {
	id     int
	weight float64
}

type edge struct {
	to     int
	weight float64
}

// vectorize builds tf-idf vectors sorted by term id. Term ids are assigned
// in order of first appearance, so the arithmetic never depends on map order.
func (r *Ranker) vectorize(sentences []string, stop map[string]struct{}) [][]term {
	ids := make(map[string]int)
	var df []int
	counts := make([][]term, len(sentences))

	for i, s := range sentences {
		seen := make(map[int]int)
		for _, w := range words(s, stop) {
			id, ok := ids[w]
			if !ok {
				id = len(df)
				ids[w] = id
				df = append(df, 0)
			}
			if pos, ok := seen[id]; ok {
				counts[i][pos].weight++
				continue
			}
			seen[id] = len(counts[i])
			counts[i] = append(counts[i], term{id: id, weight: 1})
			df[id]++
		}
	}

	n := float64(len(sentences))
	for _, v := range counts {
		for k := range v {
			v[k].weight *= math.Log(1 + n/float64(df[v[k].id]))
		}
		sort.Slice(v, func(a, b int) bool { return v[a].id < v[b].id })
	}
	return counts
}

// words lowercases s and splits it into letter/digit runs, dropping stop
// words and single characters.
func words(s string, stop map[string]struct{}) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		if _, ok := stop[f]; ok {
			continue
		}
		out = append(out, f)
	}
	return out
}

// graph links every pair of distinct sentences whose similarity reaches the
// threshold. There are no self loops.
func (r *Ranker) graph(vectors [][]term) [][]edge {
	norms := make([]float64, len(vectors))
	for i, v := range vectors {
		norms[i] = norm(v)
	}

	adj := make([][]edge, len(vectors))
	for i := range vectors {
		for j := i + 1; j < len(vectors); j++ {
			if norms[i] == 0 || norms[j] == 0 {
				continue
			}
			sim := dot(vectors[i], vectors[j]) / (norms[i] * norms[j])
			if sim < r.Threshold {
				continue
			}
			adj[i] = append(adj[i], edge{to: j, weight: sim})
			adj[j] = append(adj[j], edge{to: i, weight: sim})
		}
	}
	for i := range adj {
		sort.Slice(adj[i], func(a, b int) bool { return adj[i][a].to < adj[i][b].to })
	}
	return adj
}

// walk runs damped power iteration until the L1 change drops below the
// tolerance or the iteration limit is reached.
func (r *Ranker) walk(adj [][]edge) []float64 {
	n := len(adj)
	d := r.Damping

	out := make([]float64, n)
	for i, edges := range adj {
		for _, e := range edges {
			out[i] += e.weight
		}
	}

	p := make([]float64, n)
	for i := range p {
		p[i] = 1 / float64(n)
	}
	next := make([]float64, n)

	for iter := 0; iter < r.MaxIterations; iter++ {
		var dangling float64
		for i := range p {
			if out[i] == 0 {
				dangling += p[i]
			}
		}
		base := (1-d)/float64(n) + d*dangling/float64(n)
		for j := range next {
			next[j] = base
		}
		for i, edges := range adj {
			if out[i] == 0 {
				continue
			}
			share := d * p[i] / out[i]
			for _, e := range edges {
				next[e.to] += share * e.weight
			}
		}

		var delta float64
		for i := range p {
			delta += math.Abs(next[i] - p[i])
		}
		p, next = next, p
		if delta < r.Tolerance {
			break
		}
	}
	return p
}

func dot(a, b []term) float64 {
	var sum float64
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i].id == b[j].id:
			sum += a[i].weight * b[j].weight
			i++
			j++
		case a[i].id < b[j].id:
			i++
		default:
			j++
		}
	}
	return sum
}

func norm(v []term) float64 {
	var sum float64
	for _, t := range v {
		sum += t.weight * t.weight
	}
	return math.Sqrt(sum)
}
