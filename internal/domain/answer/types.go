package answer

// Outcome identifies how an invocation concluded.
type Outcome string

const (
	// OutcomeAnswered means a message cleared the similarity threshold.
	OutcomeAnswered Outcome = "answered"
	// OutcomeFetchFailed means the message archive could not be read.
	OutcomeFetchFailed Outcome = "fetch_failed"
	// OutcomeEmptyCorpus means the archive returned zero records.
	OutcomeEmptyCorpus Outcome = "empty_corpus"
	// OutcomeMemberNotFound means no known member was named in the question.
	OutcomeMemberNotFound Outcome = "member_not_found"
	// OutcomeNoMessages means the resolved member has no messages.
	OutcomeNoMessages Outcome = "no_messages"
	// OutcomeLowRelevance means the best candidate scored below threshold.
	OutcomeLowRelevance Outcome = "low_relevance"
)

// Message is one archived record. Speaker may be empty, in which case the
// record never participates in member resolution.
type Message struct {
	Speaker string `json:"speaker,omitempty"`
	Text    string `json:"text"`
}

// Request carries the caller's question.
type Request struct {
	Question string `json:"question" form:"question"`
}

// Response is returned to the HTTP transport. Answer is either the winning
// message's original text or a human-readable diagnostic; Outcome says which.
type Response struct {
	Answer  string  `json:"answer"`
	Outcome Outcome `json:"outcome"`
	Member  string  `json:"member,omitempty"`
	Score   float64 `json:"score,omitempty"`
}
