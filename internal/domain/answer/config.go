package answer

// Config holds runtime knobs for the answering service.
type Config struct {
	// SimilarityThreshold is the minimum cosine score a candidate must reach
	// before its text is surfaced as the answer.
	SimilarityThreshold float64
}
