package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/drpcorg/chainquery/client"
	"github.com/drpcorg/chainquery/internal/config"
	_ "github.com/drpcorg/chainquery/pkg/logger"
	"github.com/drpcorg/chainquery/provider"
	"github.com/drpcorg/chainquery/types"
	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/rs/zerolog/log"
)

// chainquery probes the status endpoint of the configured backend and logs
// the latest block height of every served chain.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	settings, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load the settings")
	}

	httpProvider, err := provider.NewHttpProvider(settings.Endpoint, settings.Secure, settings.Username, settings.Password)
	if err != nil {
		log.Fatal().Err(err).Msgf("unable to create a provider for %s", settings.Endpoint)
	}
	queryClient := client.NewClient[provider.Provider](httpProvider)

	statuses, err := failsafe.NewExecutor[[]*types.Status](createStatusRetryPolicy(settings.Endpoint)).
		WithContext(ctx).
		Get(func() ([]*types.Status, error) {
			return fetchStatuses(ctx, queryClient)
		})
	if err != nil {
		log.Fatal().Err(err).Msgf("unable to get the status of %s", settings.Endpoint)
	}

	for _, status := range statuses {
		log.Info().
			Str("chain", status.Chain).
			Str("entity", status.Entity).
			Uint64("latest_block_height", status.LatestBlockHeight).
			Msg("chain status")
	}
}

func fetchStatuses(ctx context.Context, queryClient *client.Client[provider.Provider]) ([]*types.Status, error) {
	stream, err := queryClient.GetStatus(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = stream.Close()
	}()

	var statuses []*types.Status
	for {
		status, err := stream.Next(ctx)
		if err == io.EOF {
			return statuses, nil
		}
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
}

func createStatusRetryPolicy(endpoint string) failsafe.Policy[[]*types.Status] {
	retryPolicy := retrypolicy.Builder[[]*types.Status]()

	retryPolicy.WithMaxAttempts(3)
	retryPolicy.WithBackoff(500*time.Millisecond, 5*time.Second)
	retryPolicy.WithJitter(200 * time.Millisecond)

	retryPolicy.HandleIf(func(_ []*types.Status, err error) bool {
		// validation and decode problems do not get better on retry
		return err != nil && !provider.IsValidationError(err) && !provider.IsDecodeError(err)
	})

	retryPolicy.OnRetry(func(event failsafe.ExecutionEvent[[]*types.Status]) {
		log.Warn().Msgf("retrying the status probe of %s", endpoint)
	})

	return retryPolicy.Build()
}
