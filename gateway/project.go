package gateway

import (
	"context"

	gql "github.com/machinebox/graphql"
	"github.com/pkg/errors"
	"github.com/railwayapp/envcli/entity"
)

// GetProject returns the project associated with the projectId, or nil when
// the API reports no such project. Transport and status errors are returned
// as is, wrapped.
func (g *Gateway) GetProject(ctx context.Context, projectId string, teamID string) (*entity.Project, error) {
	gqlReq := gql.NewRequest(`
		query ($projectId: ID!) {
			projectById(projectId: $projectId) {
				id,
				name
			}
		}
	`)

	gqlReq.Var("projectId", projectId)

	if err := g.authorize(gqlReq, teamID); err != nil {
		return nil, err
	}

	var resp struct {
		Project *entity.Project `json:"projectById"`
	}
	if err := g.run(ctx, gqlReq, &resp); err != nil {
		return nil, errors.Wrap(graphQLStatus(err), "fetch project")
	}
	return resp.Project, nil
}
