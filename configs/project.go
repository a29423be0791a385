package configs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/railwayapp/envcli/entity"
	"github.com/railwayapp/envcli/errors"
)

const (
	linkFileName = "project.json"
	// DEPRECATED: older CLIs kept the project id under "project" here
	legacyLinkFileName = "config.json"

	projectIDEnv = "RAILWAY_PROJECT_ID"
	orgIDEnv     = "RAILWAY_ORG_ID"
)

// GetLinkState returns the link for the working directory. It returns
// errors.ProjectConfigNotFound when nothing usable is persisted. Files are
// never written.
func (c *Configs) GetLinkState() (*entity.LinkState, error) {
	projectID, hasProjectID := os.LookupEnv(projectIDEnv)
	orgID, hasOrgID := os.LookupEnv(orgIDEnv)
	switch {
	case hasProjectID && hasOrgID:
		if projectID == "" {
			return nil, errors.ProjectConfigNotFound
		}
		return &entity.LinkState{ProjectID: projectID, OrgID: orgID}, nil
	case hasProjectID:
		return nil, errors.PartialLinkOverride(projectIDEnv, orgIDEnv)
	case hasOrgID:
		return nil, errors.PartialLinkOverride(orgIDEnv, projectIDEnv)
	}

	v := c.newProjectViper(linkFileName)
	if err := v.ReadInConfig(); err == nil {
		state := &entity.LinkState{
			ProjectID: v.GetString("projectId"),
			OrgID:     v.GetString("orgId"),
		}
		if state.ProjectID == "" {
			return nil, errors.ProjectConfigNotFound
		}
		return state, nil
	} else if exists, _ := c.LinkFileExists(); exists {
		// malformed link files are treated like missing ones
		return nil, errors.ProjectConfigNotFound
	}

	legacy := c.newProjectViper(legacyLinkFileName)
	if err := legacy.ReadInConfig(); err != nil {
		return nil, errors.ProjectConfigNotFound
	}
	if projectID := legacy.GetString("project"); projectID != "" {
		return &entity.LinkState{ProjectID: projectID}, nil
	}
	return nil, errors.ProjectConfigNotFound
}

func (c *Configs) LinkFilePath() string {
	return filepath.Join(c.projectDir, linkFileName)
}

func (c *Configs) LinkFileExists() (bool, error) {
	return afero.Exists(c.fs, c.LinkFilePath())
}
