package logger_test

import (
	"bytes"
	"testing"

	"github.com/railwayapp/envcli/logger"
	"github.com/stretchr/testify/require"
)

func TestDebugDisabledByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, false)
	log.Debug().Msg("hidden")
	log.Warn().Msg("hidden too")
	require.Empty(t, buf.String())
}

func TestDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(&buf, true)
	t.Cleanup(func() { logger.Init(&buf, false) })

	logger.Debug().Str("projectId", "proj_1").Msg("resolving link")
	require.Contains(t, buf.String(), "resolving link")
	require.Contains(t, buf.String(), "projectId=proj_1")
}
