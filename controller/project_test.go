package controller_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/railwayapp/envcli/configs"
	"github.com/railwayapp/envcli/controller"
	"github.com/railwayapp/envcli/entity"
	"github.com/railwayapp/envcli/errors"
	"github.com/railwayapp/envcli/gateway"
	"github.com/railwayapp/envcli/gateway/gatewaytest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	workDir = "/work/app"
	homeDir = "/home/user"
	token   = "secret-token"
)

var demo = &entity.Project{Id: "proj_1", Name: "demo"}

type fixture struct {
	fs   afero.Fs
	srv  *gatewaytest.Server
	ctrl *controller.Controller
}

func newFixture(t *testing.T, httpClient *http.Client) *fixture {
	t.Helper()
	srv := gatewaytest.NewServer(token)
	t.Cleanup(srv.Close)
	srv.AddProject(demo)

	fs := afero.NewMemMapFs()
	require.NoError(t, srv.WriteRootConfig(fs, homeDir))
	cfg := configs.NewWithFs(fs, workDir, homeDir)
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &fixture{
		fs:   fs,
		srv:  srv,
		ctrl: controller.New(cfg, gateway.NewWithHTTPClient(cfg, httpClient)),
	}
}

func (f *fixture) link(t *testing.T, link *entity.LinkState) {
	t.Helper()
	require.NoError(t, gatewaytest.WriteLink(f.fs, workDir, link))
}

func (f *fixture) writeLinkFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, filepath.Join(workDir, ".railway", name), []byte(content), 0o644))
}

func TestResolveLinkClassification(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, f *fixture)
		expected entity.LinkResult
		calls    int
	}{
		{
			name:     "No link file is not linked",
			setup:    func(t *testing.T, f *fixture) {},
			expected: &entity.NotLinked{},
			calls:    0,
		},
		{
			name: "Malformed link file is not linked",
			setup: func(t *testing.T, f *fixture) {
				f.writeLinkFile(t, "project.json", "{not json")
			},
			expected: &entity.NotLinked{},
			calls:    0,
		},
		{
			name: "Empty project id is not linked",
			setup: func(t *testing.T, f *fixture) {
				f.writeLinkFile(t, "project.json", `{"orgId": "team_1"}`)
			},
			expected: &entity.NotLinked{},
			calls:    0,
		},
		{
			name: "Valid link is linked",
			setup: func(t *testing.T, f *fixture) {
				f.link(t, &entity.LinkState{ProjectID: "proj_1"})
			},
			expected: &entity.Linked{Project: demo},
			calls:    1,
		},
		{
			name: "Team link carries its scope",
			setup: func(t *testing.T, f *fixture) {
				f.link(t, &entity.LinkState{ProjectID: "proj_1", OrgID: "team_1"})
			},
			expected: &entity.Linked{Project: demo, TeamID: "team_1"},
			calls:    1,
		},
		{
			name: "Legacy project config is linked",
			setup: func(t *testing.T, f *fixture) {
				f.writeLinkFile(t, "config.json", `{"project": "proj_1", "environment": "env_1"}`)
			},
			expected: &entity.Linked{Project: demo},
			calls:    1,
		},
		{
			name: "Deleted project is not linked",
			setup: func(t *testing.T, f *fixture) {
				f.link(t, &entity.LinkState{ProjectID: "proj_gone"})
			},
			expected: &entity.NotLinked{},
			calls:    1,
		},
		{
			name: "Not found status is not linked",
			setup: func(t *testing.T, f *fixture) {
				f.link(t, &entity.LinkState{ProjectID: "proj_1"})
				f.srv.FailWith(gatewaytest.OperationProject, http.StatusNotFound)
			},
			expected: &entity.NotLinked{},
			calls:    1,
		},
		{
			name: "Forbidden project is not linked",
			setup: func(t *testing.T, f *fixture) {
				f.link(t, &entity.LinkState{ProjectID: "proj_1"})
				f.srv.FailWith(gatewaytest.OperationProject, http.StatusForbidden)
			},
			expected: &entity.NotLinked{},
			calls:    1,
		},
		{
			name: "Project reported missing in the GraphQL errors is not linked",
			setup: func(t *testing.T, f *fixture) {
				f.link(t, &entity.LinkState{ProjectID: "proj_1"})
				f.srv.FailWithGraphQLError(gatewaytest.OperationProject, "Project not found")
			},
			expected: &entity.NotLinked{},
			calls:    1,
		},
		{
			name: "Project reported inaccessible in the GraphQL errors is not linked",
			setup: func(t *testing.T, f *fixture) {
				f.link(t, &entity.LinkState{ProjectID: "proj_1"})
				f.srv.FailWithGraphQLError(gatewaytest.OperationProject, "You do not have access to this project")
			},
			expected: &entity.NotLinked{},
			calls:    1,
		},
		{
			name: "Rejected token is an error",
			setup: func(t *testing.T, f *fixture) {
				f.link(t, &entity.LinkState{ProjectID: "proj_1"})
				f.srv.FailWith(gatewaytest.OperationProject, http.StatusUnauthorized)
			},
			expected: &entity.LinkError{ExitCode: 1, Err: errors.Unauthorized},
			calls:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			tt.setup(t, f)

			require.Equal(t, tt.expected, f.ctrl.ResolveLink(context.Background()))
			require.Equal(t, tt.calls, f.srv.Count(gatewaytest.OperationProject))
		})
	}
}

func TestResolveLinkServerError(t *testing.T) {
	f := newFixture(t, nil)
	f.link(t, &entity.LinkState{ProjectID: "proj_1"})
	f.srv.FailWith(gatewaytest.OperationProject, http.StatusBadGateway)

	result := f.ctrl.ResolveLink(context.Background())
	linkErr, ok := result.(*entity.LinkError)
	require.True(t, ok, "expected *entity.LinkError, got %T", result)
	require.Equal(t, 1, linkErr.ExitCode)
	require.Equal(t, errors.ProblemFetchingProject, linkErr.Err)
}

func TestResolveLinkTimeout(t *testing.T) {
	f := newFixture(t, &http.Client{Timeout: 50 * time.Millisecond})
	f.link(t, &entity.LinkState{ProjectID: "proj_1"})
	f.srv.Stall(gatewaytest.OperationProject, 2*time.Second)

	result := f.ctrl.ResolveLink(context.Background())
	linkErr, ok := result.(*entity.LinkError)
	require.True(t, ok, "expected *entity.LinkError, got %T", result)
	require.Equal(t, 1, linkErr.ExitCode)
	require.Equal(t, errors.ProblemFetchingProject, linkErr.Err)
	require.Equal(t, 1, f.srv.Count(gatewaytest.OperationProject))
}

func TestResolveLinkInterrupted(t *testing.T) {
	f := newFixture(t, nil)
	f.link(t, &entity.LinkState{ProjectID: "proj_1"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := f.ctrl.ResolveLink(ctx)
	require.Equal(t, &entity.LinkError{ExitCode: 130, Err: context.Canceled}, result)
}

func TestResolveLinkLeavesLinkFileUntouched(t *testing.T) {
	for _, status := range []int{0, http.StatusNotFound, http.StatusUnauthorized, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			f := newFixture(t, nil)
			f.writeLinkFile(t, "project.json", "{\n  \"projectId\": \"proj_1\",\n  \"orgId\": \"team_1\"\n}\n")
			if status != 0 {
				f.srv.FailWith(gatewaytest.OperationProject, status)
			}
			path := filepath.Join(workDir, ".railway", "project.json")
			before, err := afero.ReadFile(f.fs, path)
			require.NoError(t, err)
			statBefore, err := f.fs.Stat(path)
			require.NoError(t, err)

			f.ctrl.ResolveLink(context.Background())

			after, err := afero.ReadFile(f.fs, path)
			require.NoError(t, err)
			require.Equal(t, before, after)
			statAfter, err := f.fs.Stat(path)
			require.NoError(t, err)
			require.Equal(t, statBefore.ModTime(), statAfter.ModTime())
		})
	}
}

func TestResolveLinkScopesRequests(t *testing.T) {
	t.Run("Team link", func(t *testing.T) {
		f := newFixture(t, nil)
		f.link(t, &entity.LinkState{ProjectID: "proj_1", OrgID: "team_1"})
		f.ctrl.ResolveLink(context.Background())
		require.Equal(t, "team_1", f.srv.Requests()[0].Header.Get(gateway.TEAM_HEADER))
	})

	t.Run("Personal link ignores the current team", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, gatewaytest.WriteRootConfig(f.fs, homeDir, &entity.RootConfig{
			User:        entity.UserConfig{Token: token},
			CurrentTeam: "team_current",
			APIURL:      f.srv.URL,
		}))
		cfg := configs.NewWithFs(f.fs, workDir, homeDir)
		ctrl := controller.New(cfg, gateway.New(cfg))
		f.link(t, &entity.LinkState{ProjectID: "proj_1", OrgID: "user_1"})

		require.Equal(t, &entity.Linked{Project: demo}, ctrl.ResolveLink(context.Background()))
		require.Empty(t, f.srv.Requests()[0].Header.Get(gateway.TEAM_HEADER))
	})

	t.Run("Legacy link uses the current team", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, gatewaytest.WriteRootConfig(f.fs, homeDir, &entity.RootConfig{
			User:        entity.UserConfig{Token: token},
			CurrentTeam: "team_current",
			APIURL:      f.srv.URL,
		}))
		cfg := configs.NewWithFs(f.fs, workDir, homeDir)
		ctrl := controller.New(cfg, gateway.New(cfg))
		f.writeLinkFile(t, "config.json", `{"project": "proj_1"}`)

		require.Equal(t, &entity.Linked{Project: demo, TeamID: "team_current"}, ctrl.ResolveLink(context.Background()))
		require.Equal(t, "team_current", f.srv.Requests()[0].Header.Get(gateway.TEAM_HEADER))
	})
}

func TestResolveLinkEnvOverride(t *testing.T) {
	t.Run("Both set replaces the link file", func(t *testing.T) {
		f := newFixture(t, nil)
		f.srv.AddProject(&entity.Project{Id: "proj_2", Name: "other"})
		f.link(t, &entity.LinkState{ProjectID: "proj_1"})
		t.Setenv("RAILWAY_PROJECT_ID", "proj_2")
		t.Setenv("RAILWAY_ORG_ID", "team_9")

		require.Equal(t,
			&entity.Linked{Project: &entity.Project{Id: "proj_2", Name: "other"}, TeamID: "team_9"},
			f.ctrl.ResolveLink(context.Background()))
	})

	t.Run("Only one set is an error without a request", func(t *testing.T) {
		f := newFixture(t, nil)
		t.Setenv("RAILWAY_PROJECT_ID", "proj_1")

		result := f.ctrl.ResolveLink(context.Background())
		linkErr, ok := result.(*entity.LinkError)
		require.True(t, ok, "expected *entity.LinkError, got %T", result)
		require.Equal(t, 1, linkErr.ExitCode)
		require.Contains(t, linkErr.Err.Error(), "RAILWAY_ORG_ID")
		require.Empty(t, f.srv.Requests())
	})
}
