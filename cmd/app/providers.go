package main

import (
	"github.com/teamarchive/member-qa/internal/domain/answer"
	"github.com/teamarchive/member-qa/internal/infra/config"
	"github.com/teamarchive/member-qa/internal/infra/messages"
)

func provideAnswerConfig(cfg *config.Config) answer.Config {
	return answer.Config{
		SimilarityThreshold: cfg.Answer.SimilarityThreshold,
	}
}

func provideMessagesClient(cfg *config.Config) *messages.Client {
	return messages.NewClient(cfg.Messages.APIBaseURL, cfg.Messages.FetchTimeout)
}
