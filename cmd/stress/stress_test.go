package stress

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/classicds/datastructs/cmd"
	"github.com/classicds/datastructs/cmd/util"
	"github.com/classicds/datastructs/internal/config"
	"github.com/classicds/datastructs/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun(t *testing.T) {
	log, logs := logger.NewObserverLogger("info")

	result, err := Run(context.Background(), log, config.StressConfig{Workers: 16, Values: 5000})
	require.NoError(t, err)
	require.Equal(t, Result{Workers: 16, Pushed: 5000, Popped: 5000}, result)
	require.Equal(t, 1, logs.FilterMessage("stress run finished").Len())
	// the drain stops at empty, so no underflow is reported
	require.Equal(t, 0, logs.FilterMessage("stack underflow").Len())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, logger.NewNoopLogger(), config.StressConfig{Workers: 2, Values: 10})
	require.ErrorIs(t, err, context.Canceled)
}

func TestStressCommand(t *testing.T) {
	util.PrepareTempConfigDir(t)

	viper.Reset()
	root := cmd.NewRootCommand()
	root.AddCommand(NewStressCommand())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"stress", "--stress-workers", "4", "--stress-values", "100", "--log-level", "none"})

	require.NoError(t, root.Execute())
	require.Equal(t, "pushed 100 values from 4 workers, popped 100\n", out.String())
}

func TestStressCommandFromEnv(t *testing.T) {
	util.PrepareTempConfigDir(t)
	t.Setenv("DATASTRUCTS_STRESS_VALUES", "7")

	viper.Reset()
	root := cmd.NewRootCommand()
	root.AddCommand(NewStressCommand())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"stress", "--log-level", "none"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "pushed 7 values")
}
