//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/teamarchive/member-qa/internal/bootstrap"
	"github.com/teamarchive/member-qa/internal/domain/answer"
	"github.com/teamarchive/member-qa/internal/infra/config"
	"github.com/teamarchive/member-qa/internal/infra/messages"
	httpiface "github.com/teamarchive/member-qa/internal/interface/http"
	"github.com/teamarchive/member-qa/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAnswerConfig,
		provideMessagesClient,
		answer.NewService,
		wire.Bind(new(answer.MessageSource), new(*messages.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
