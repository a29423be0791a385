package gateway

import (
	"context"

	gql "github.com/machinebox/graphql"
	"github.com/pkg/errors"
	"github.com/railwayapp/envcli/entity"
)

// GetEnvVariables lists every variable of the project, or only those of
// req.Target when it is set.
func (g *Gateway) GetEnvVariables(ctx context.Context, req *entity.GetEnvVariablesRequest) ([]*entity.EnvVariable, error) {
	gqlReq := gql.NewRequest(`
		query ($projectId: ID!, $target: String) {
			allEnvsForProject(projectId: $projectId, target: $target) {
				key,
				value,
				target,
				createdAt,
				updatedAt
			}
		}
	`)
	gqlReq.Var("projectId", req.ProjectID)
	if req.Target != "" {
		gqlReq.Var("target", string(req.Target))
	}

	if err := g.authorize(gqlReq, req.TeamID); err != nil {
		return nil, err
	}

	var resp struct {
		Envs []*entity.EnvVariable `json:"allEnvsForProject"`
	}
	if err := g.run(ctx, gqlReq, &resp); err != nil {
		return nil, errors.Wrap(graphQLStatus(err), "fetch environment variables")
	}
	return resp.Envs, nil
}
