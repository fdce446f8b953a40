package answer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/teamarchive/member-qa/pkg/errors"
)

// Service answers natural-language questions about members.
type Service interface {
	Ask(ctx context.Context, req Request) (Response, error)
}

// MessageSource fetches the full message corpus for one invocation.
type MessageSource interface {
	Fetch(ctx context.Context) ([]Message, error)
}

type service struct {
	cfg    Config
	source MessageSource
	logger *slog.Logger
}

// NewService wires up the answering domain.
func NewService(cfg Config, source MessageSource, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		source: source,
		logger: logger.With("component", "answer.service"),
	}
}

// Ask runs the full pipeline: fetch, resolve the member named in the
// question, restrict the corpus to that member, rank by TF-IDF similarity.
// Every pipeline failure maps to a diagnostic Response; an error is only
// returned for caller mistakes such as a blank question.
func (s *service) Ask(ctx context.Context, req Request) (Response, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Response{}, apperrors.Wrap("invalid_input", "question cannot be empty", nil)
	}

	corpus, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Warn("corpus fetch failed", "error", err)
		return Response{
			Answer:  fmt.Sprintf("Could not fetch messages: %v", err),
			Outcome: OutcomeFetchFailed,
		}, nil
	}
	if len(corpus) == 0 {
		return Response{Answer: "No dataset messages found.", Outcome: OutcomeEmptyCorpus}, nil
	}

	normalized := Normalize(question)

	member, ok := ResolveMember(normalized, speakerNames(corpus))
	if !ok {
		return Response{
			Answer:  "Could not identify the member in your question.",
			Outcome: OutcomeMemberNotFound,
		}, nil
	}

	candidates := make([]Message, 0, len(corpus))
	for _, msg := range corpus {
		if msg.Speaker == member {
			candidates = append(candidates, msg)
		}
	}
	// Unreachable given how member was derived, but checked anyway so the
	// ranker never sees an empty candidate set.
	if len(candidates) == 0 {
		return Response{
			Answer:  fmt.Sprintf("No messages found for %s.", member),
			Outcome: OutcomeNoMessages,
			Member:  member,
		}, nil
	}

	texts := make([]string, len(candidates))
	for i, msg := range candidates {
		texts[i] = Normalize(msg.Text)
	}

	bestIdx, bestScore := RankBySimilarity(normalized, texts)
	s.logger.Debug("ranked candidates", "member", member, "candidates", len(candidates), "score", bestScore)

	if bestScore < s.cfg.SimilarityThreshold {
		return Response{
			Answer:  "No relevant info found.",
			Outcome: OutcomeLowRelevance,
			Member:  member,
			Score:   bestScore,
		}, nil
	}

	return Response{
		Answer:  candidates[bestIdx].Text,
		Outcome: OutcomeAnswered,
		Member:  member,
		Score:   bestScore,
	}, nil
}

// speakerNames collects distinct non-empty speakers in first-seen order.
// That order is what makes member resolution deterministic.
func speakerNames(corpus []Message) []string {
	seen := make(map[string]struct{}, len(corpus))
	names := make([]string, 0, len(corpus))
	for _, msg := range corpus {
		if strings.TrimSpace(msg.Speaker) == "" {
			continue
		}
		if _, ok := seen[msg.Speaker]; ok {
			continue
		}
		seen[msg.Speaker] = struct{}{}
		names = append(names, msg.Speaker)
	}
	return names
}
