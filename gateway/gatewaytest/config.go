package gatewaytest

import (
	"encoding/json"
	"path/filepath"

	"github.com/railwayapp/envcli/entity"
	"github.com/spf13/afero"
)

// WriteRootConfig logs homeDir into the server: it writes a root config with
// the server's token and url.
func (s *Server) WriteRootConfig(fs afero.Fs, homeDir string) error {
	return WriteRootConfig(fs, homeDir, &entity.RootConfig{
		User:   entity.UserConfig{Token: s.Token},
		APIURL: s.URL,
	})
}

func WriteRootConfig(fs afero.Fs, homeDir string, cfg *entity.RootConfig) error {
	b, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, filepath.Join(homeDir, ".railway", "config.json"), b, 0o600)
}

// WriteLink persists a link for workDir the way `railway link` does.
func WriteLink(fs afero.Fs, workDir string, link *entity.LinkState) error {
	b, err := json.MarshalIndent(link, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, filepath.Join(workDir, ".railway", "project.json"), b, 0o644)
}
