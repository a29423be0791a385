package controller

import (
	"context"

	"github.com/railwayapp/envcli/entity"
	"github.com/railwayapp/envcli/errors"
	"github.com/railwayapp/envcli/logger"
)

const (
	exitFailure     = 1
	exitInterrupted = 130
)

// ResolveLink maps the working directory to its linked project. The link is
// checked against the API with a single request and nothing is written.
// Failures are reported through *entity.LinkError, never returned.
func (c *Controller) ResolveLink(ctx context.Context) entity.LinkResult {
	link, err := c.cfg.GetLinkState()
	if err == errors.ProjectConfigNotFound {
		logger.Debug().Msg("no link found")
		return &entity.NotLinked{}
	} else if err != nil {
		return &entity.LinkError{ExitCode: exitFailure, Err: err}
	}

	teamID := c.teamScope(link)
	log := logger.Logger.With().Str("projectId", link.ProjectID).Str("teamId", teamID).Logger()

	project, err := c.gtwy.GetProject(ctx, link.ProjectID, teamID)
	switch {
	case err == nil && project == nil:
		log.Debug().Msg("linked project no longer exists")
		return &entity.NotLinked{}
	case err == nil:
		log.Debug().Str("name", project.Name).Msg("link confirmed")
		return &entity.Linked{Project: project, TeamID: teamID}
	case errors.IsNotFound(err), errors.IsForbidden(err):
		log.Debug().Err(err).Msg("linked project is not accessible")
		return &entity.NotLinked{}
	case errors.IsUnauthorized(err):
		log.Debug().Err(err).Msg("token rejected")
		return &entity.LinkError{ExitCode: exitFailure, Err: errors.Unauthorized}
	case ctx.Err() == context.Canceled:
		return &entity.LinkError{ExitCode: exitInterrupted, Err: ctx.Err()}
	}
	log.Debug().Err(err).Msg("link validation failed")
	return &entity.LinkError{ExitCode: exitFailure, Err: errors.ProblemFetchingProject}
}

// teamScope picks the team requests for link are made under. A link that
// names an owner decides on its own; older links fall back to the current
// team of the root config.
func (c *Controller) teamScope(link *entity.LinkState) string {
	if link.OrgID != "" {
		return link.TeamID()
	}
	return c.cfg.GetRootConfigs().CurrentTeam
}
