package similarity

import (
	"math"
	"sort"
	"sync"
)

type weight struct {
	term  int
	value float64
}

// Vector is a sparse, l2-normalised tf-idf vector ordered by term id.
type Vector []weight

func (v Vector) Dot(o Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v) && j < len(o) {
		switch {
		case v[i].term == o[j].term:
			sum += v[i].value * o[j].value
			i++
			j++
		case v[i].term < o[j].term:
			i++
		default:
			j++
		}
	}
	return sum
}

// Index is a tf-idf model fitted once over a fixed document set. Scoring is
// read-only apart from the query cache, so an Index is safe for concurrent use.
type Index struct {
	vocab map[string]int
	idf   []float64
	docs  []Vector
	cache *queryCache
}

// NewIndex fits the vocabulary and smoothed idf weights
// (ln((1+n)/(1+df)) + 1) over docs and vectorises each of them.
func NewIndex(docs []string) *Index {
	ix := &Index{
		vocab: make(map[string]int),
		cache: newQueryCache(),
	}

	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := Tokenize(doc)
		tokenized[i] = tokens
		seen := make(map[string]bool, len(tokens))
		for _, token := range tokens {
			if seen[token] {
				continue
			}
			seen[token] = true
			df[token]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	ix.idf = make([]float64, len(terms))
	for id, term := range terms {
		ix.vocab[term] = id
		ix.idf[id] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	ix.docs = make([]Vector, len(docs))
	for i, tokens := range tokenized {
		ix.docs[i] = ix.vectorize(tokens)
	}
	return ix
}

func (ix *Index) Len() int {
	return len(ix.docs)
}

// Vector returns the query vector for text. Terms outside the fitted
// vocabulary are ignored. Results are cached per distinct text.
func (ix *Index) Vector(text string) Vector {
	if v, ok := ix.cache.get(text); ok {
		return v
	}
	v := ix.vectorize(Tokenize(text))
	ix.cache.put(text, v)
	return v
}

// Scores returns the cosine similarity between query and every document, in
// document order.
func (ix *Index) Scores(query string) []float64 {
	q := ix.Vector(query)
	scores := make([]float64, len(ix.docs))
	if len(q) == 0 {
		return scores
	}
	for i, doc := range ix.docs {
		scores[i] = q.Dot(doc)
	}
	return scores
}

// CachedQueries reports how many distinct query vectors are held.
func (ix *Index) CachedQueries() int {
	return ix.cache.len()
}

func (ix *Index) vectorize(tokens []string) Vector {
	counts := make(map[int]float64)
	for _, token := range tokens {
		if id, ok := ix.vocab[token]; ok {
			counts[id]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	v := make(Vector, 0, len(counts))
	var norm float64
	for id, tf := range counts {
		w := tf * ix.idf[id]
		v = append(v, weight{term: id, value: w})
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i].value /= norm
	}
	sort.Slice(v, func(i, j int) bool { return v[i].term < v[j].term })
	return v
}

// queryCache never evicts; entries live as long as the Index.
type queryCache struct {
	mu      sync.RWMutex
	vectors map[string]Vector
}

func newQueryCache() *queryCache {
	return &queryCache{vectors: make(map[string]Vector)}
}

func (c *queryCache) get(key string) (Vector, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.vectors[key]
	return v, ok
}

func (c *queryCache) put(key string, v Vector) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vectors[key] = v
}

func (c *queryCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vectors)
}
