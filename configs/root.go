package configs

import (
	"github.com/railwayapp/envcli/entity"
	"github.com/railwayapp/envcli/errors"
)

const (
	productionHost = "https://backboard.railway.app"
	developHost    = "http://localhost:8082"
)

func (c *Configs) GetRootConfigs() *entity.RootConfig {
	v := c.rootConfigs.viper
	return &entity.RootConfig{
		User: entity.UserConfig{
			Token: v.GetString(tokenKey),
		},
		CurrentTeam: v.GetString(currentTeamKey),
		APIURL:      v.GetString(apiURLKey),
	}
}

// GetUserConfigs returns the credentials of the logged in user.
func (c *Configs) GetUserConfigs() (*entity.UserConfig, error) {
	cfg := c.GetRootConfigs().User
	if cfg.Token == "" {
		return nil, errors.UserConfigNotFound
	}
	return &cfg, nil
}

// GetHost returns the API base url, honouring RAILWAY_API_URL and dev mode.
func (c *Configs) GetHost() string {
	if url := c.GetRootConfigs().APIURL; url != "" {
		return url
	}
	if IsDevMode() {
		return developHost
	}
	return productionHost
}
