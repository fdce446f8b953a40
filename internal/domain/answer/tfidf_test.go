package answer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankBySimilarityPicksSharedVocabulary(t *testing.T) {
	candidates := []string{
		"the project deadline is friday",
		"lunch was great today",
	}

	idx, score := RankBySimilarity("project deadline", candidates)
	require.Equal(t, 0, idx)
	require.Greater(t, score, 0.0)

	_, other := RankBySimilarity("lunch today", candidates)
	require.Greater(t, other, 0.0)
}

func TestRankBySimilarityIdenticalText(t *testing.T) {
	idx, score := RankBySimilarity("finish the quarterly report", []string{"finish the quarterly report"})
	require.Equal(t, 0, idx)
	require.InDelta(t, 1.0, score, 1e-9)
}

func TestRankBySimilarityDisjointVocabulary(t *testing.T) {
	idx, score := RankBySimilarity("quantum physics", []string{"lunch plans", "holiday schedule"})
	require.Equal(t, 0, idx)
	require.Zero(t, score)
}

func TestRankBySimilarityStopwordOnlyQuery(t *testing.T) {
	idx, score := RankBySimilarity("the and of", []string{"project deadline friday"})
	require.Equal(t, 0, idx)
	require.Zero(t, score)
}

func TestRankBySimilarityQuestionWordsCarryNoWeight(t *testing.T) {
	idx, score := RankBySimilarity("what did i say", []string{"project deadline friday"})
	require.Equal(t, 0, idx)
	require.Zero(t, score)
}

func TestRankBySimilarityDropsSingleCharTokens(t *testing.T) {
	// The stray single-character tokens must not tie the query to the first
	// candidate; only "deadline" carries weight.
	idx, score := RankBySimilarity("x y deadline", []string{"x y lunch", "deadline slipped again"})
	require.Equal(t, 1, idx)
	require.Greater(t, score, 0.0)
}

func TestRankBySimilarityEmptyCandidates(t *testing.T) {
	idx, score := RankBySimilarity("anything", nil)
	require.Equal(t, 0, idx)
	require.Zero(t, score)
}
