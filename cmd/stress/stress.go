// Package stress contains the stress command, which hammers a single guarded
// stack from many goroutines.
package stress

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/classicds/datastructs/cmd/util"
	"github.com/classicds/datastructs/internal/concurrency"
	"github.com/classicds/datastructs/internal/config"
	"github.com/classicds/datastructs/pkg/containers"
	"github.com/classicds/datastructs/pkg/logger"
	"github.com/classicds/datastructs/pkg/stack"
)

func NewStressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Push values onto one stack from many goroutines",
		Long: `Push values onto one stack from many goroutines.

The stack is wrapped in a lock, since none of the containers synchronize
internally. The command fails if the number of values popped afterwards
differs from the number pushed.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	defaultConfig := config.DefaultConfig()
	flags := cmd.Flags()

	flags.Int("stress-workers", defaultConfig.Stress.Workers, "the number of goroutines pushing values")
	util.MustBindPFlag("stress.workers", flags.Lookup("stress-workers"))
	util.MustBindEnv("stress.workers", "DATASTRUCTS_STRESS_WORKERS")

	flags.Int("stress-values", defaultConfig.Stress.Values, "the number of values to push")
	util.MustBindPFlag("stress.values", flags.Lookup("stress-values"))
	util.MustBindEnv("stress.values", "DATASTRUCTS_STRESS_VALUES")

	return cmd
}

// Result is what a stress run observed.
type Result struct {
	Workers int
	Pushed  int
	Popped  int
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := util.ReadConfig()
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	result, err := Run(cmd.Context(), log, cfg.Stress)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "pushed %d values from %d workers, popped %d\n", result.Pushed, result.Workers, result.Popped)
	return err
}

// Run pushes cfg.Values integers onto a guarded stack from cfg.Workers
// goroutines, then drains the stack.
func Run(ctx context.Context, log logger.Logger, cfg config.StressConfig) (Result, error) {
	guarded := containers.NewGuarded(stack.New[int](containers.WithLogger(log)))

	err := concurrency.ForEach(ctx, cfg.Workers, cfg.Values, func(_ context.Context, i int) error {
		guarded.Do(func(s *stack.Stack[int]) {
			s.Push(i)
		})
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	result := Result{Workers: cfg.Workers, Pushed: cfg.Values}
	guarded.Do(func(s *stack.Stack[int]) {
		for !s.IsEmpty() {
			s.Pop()
			result.Popped++
		}
	})

	log.Info("stress run finished",
		zap.Int("workers", result.Workers),
		zap.Int("pushed", result.Pushed),
		zap.Int("popped", result.Popped),
	)

	if result.Popped != result.Pushed {
		return result, fmt.Errorf("pushed %d values but popped %d", result.Pushed, result.Popped)
	}

	return result, nil
}
