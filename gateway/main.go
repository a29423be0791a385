package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	gql "github.com/machinebox/graphql"
	configs "github.com/railwayapp/envcli/configs"
	"github.com/railwayapp/envcli/constants"
	"github.com/railwayapp/envcli/logger"
)

const (
	CLI_SOURCE_HEADER = "cli"
	TEAM_HEADER       = "x-team-id"
	REQUEST_ID_HEADER = "x-request-id"
	VERSION_HEADER    = "x-cli-version"
)

type Gateway struct {
	cfg       *configs.Configs
	gqlClient *gql.Client
}

func New(cfg *configs.Configs) *Gateway {
	return NewWithHTTPClient(cfg, &http.Client{
		Timeout: time.Second * 30,
	})
}

// NewWithHTTPClient builds a gateway over a copy of httpClient whose
// transport turns non-2xx responses into *errors.APIError.
func NewWithHTTPClient(cfg *configs.Configs, httpClient *http.Client) *Gateway {
	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	client := *httpClient
	client.Transport = &statusTransport{base: base}

	gqlClient := gql.NewClient(fmt.Sprintf("%s/graphql", cfg.GetHost()), gql.WithHTTPClient(&client))
	gqlClient.Log = func(s string) {
		// headers carry the bearer token
		if strings.HasPrefix(s, ">> headers") {
			return
		}
		// responses carry variable values
		if strings.HasPrefix(s, "<<") {
			logger.Debug().Str("component", "graphql").Int("bytes", len(s)).Msg("response")
			return
		}
		logger.Debug().Str("component", "graphql").Msg(s)
	}
	return &Gateway{
		cfg:       cfg,
		gqlClient: gqlClient,
	}
}

// authorize stamps the credentials and, when teamID is set, the team scope
// onto req.
func (g *Gateway) authorize(req *gql.Request, teamID string) error {
	req.Header.Add("x-source", CLI_SOURCE_HEADER)
	req.Header.Add(VERSION_HEADER, constants.Version)

	requestID := uuid.NewString()
	req.Header.Add(REQUEST_ID_HEADER, requestID)

	user, err := g.cfg.GetUserConfigs()
	if err != nil {
		return err
	}
	req.Header.Add("authorization", fmt.Sprintf("Bearer %s", user.Token))

	if teamID != "" {
		req.Header.Add(TEAM_HEADER, teamID)
	}

	logger.Debug().
		Str("requestId", requestID).
		Str("teamId", teamID).
		Msg("authorized request")
	return nil
}

func (g *Gateway) run(ctx context.Context, req *gql.Request, resp interface{}) error {
	return g.gqlClient.Run(ctx, req, resp)
}
