package answer

import (
	"math"
	"sort"
	"strings"
)

var stopwords = defaultStopwords()

// RankBySimilarity builds a TF-IDF vector space jointly over the query and
// the candidate texts, scores each candidate against the query by cosine
// similarity, and returns the index and score of the best candidate. Ties
// break toward the earliest index. Inputs are expected to be normalized
// already; degenerate inputs (no usable vocabulary anywhere) score 0 across
// the board rather than failing, leaving the threshold check to the caller.
func RankBySimilarity(query string, candidates []string) (int, float64) {
	if len(candidates) == 0 {
		return 0, 0
	}

	docs := make([][]string, 0, len(candidates)+1)
	docs = append(docs, tokenize(query))
	for _, text := range candidates {
		docs = append(docs, tokenize(text))
	}

	space := newVectorSpace(docs)
	queryVec := space.vector(docs[0])

	bestIdx, bestScore := 0, 0.0
	for i, tokens := range docs[1:] {
		score := dot(queryVec, space.vector(tokens))
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return bestIdx, bestScore
}

// vectorSpace holds the vocabulary and smoothed IDF weights for one fixed
// document set. It is rebuilt from scratch on every invocation since the
// corpus is refetched each time.
type vectorSpace struct {
	vocabulary map[string]int
	idf        []float64
}

func newVectorSpace(docs [][]string) *vectorSpace {
	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	space := &vectorSpace{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		space.vocabulary[term] = i
		// Smoothed IDF
		space.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	return space
}

// vector computes the L2-normalized TF-IDF vector for one document, so
// cosine similarity against another vector reduces to a dot product.
func (s *vectorSpace) vector(tokens []string) []float64 {
	vec := make([]float64, len(s.idf))
	tf := make(map[int]int, len(tokens))
	total := 0
	for _, tok := range tokens {
		if idx, ok := s.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * s.idf[idx]
	}
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// tokenize splits normalized text into weighable terms. Single-character
// tokens carry no signal and are dropped along with stop-words.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	out := fields[:0]
	for _, tok := range fields {
		if len(tok) < 2 {
			continue
		}
		if _, isStop := stopwords[tok]; isStop {
			continue
		}
		out = append(out, tok)
	}
	return out
}
