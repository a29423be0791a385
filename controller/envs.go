package controller

import (
	"context"

	"github.com/railwayapp/envcli/entity"
	"github.com/railwayapp/envcli/errors"
	"github.com/railwayapp/envcli/logger"
	"github.com/railwayapp/envcli/ui"
)

// GetEnvVariables fetches the variables of a linked project. They are
// always read from the API, never from disk.
func (c *Controller) GetEnvVariables(ctx context.Context, req *entity.GetEnvVariablesRequest) ([]*entity.EnvVariable, error) {
	ui.StartSpinner(&ui.SpinnerCfg{
		Message: "Fetching environment variables",
	})
	envs, err := c.gtwy.GetEnvVariables(ctx, req)
	ui.StopSpinner("")

	switch {
	case err == nil:
		return envs, nil
	case errors.IsUnauthorized(err):
		return nil, errors.Unauthorized
	case ctx.Err() == context.Canceled:
		return nil, ctx.Err()
	}
	logger.Debug().Err(err).Str("projectId", req.ProjectID).Msg("fetching environment variables failed")
	return nil, errors.ProblemFetchingEnvs
}
