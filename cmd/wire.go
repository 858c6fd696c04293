package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/ai-accounts-manager/internal/adapters/store/jsonfile"
	"github.com/bnema/ai-accounts-manager/internal/application"
	"github.com/bnema/ai-accounts-manager/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	service *application.Service
	clock   ports.Clock
}

func wireApp() (*app, error) {
	clock := ports.SystemClock{}

	store, err := jsonfile.NewStore(viper.New(), clock)
	if err != nil {
		return nil, fmt.Errorf("wire state store: %w", err)
	}

	service, err := application.NewService(context.Background(), store, clock)
	if err != nil {
		return nil, fmt.Errorf("load tracker state: %w", err)
	}

	return &app{
		service: service,
		clock:   clock,
	}, nil
}
