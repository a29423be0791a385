package configs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	projectDirName = ".railway"

	// Root config keys
	tokenKey       = "user.token"
	currentTeamKey = "currentTeam"
	apiURLKey      = "apiUrl"
)

type Config struct {
	viper      *viper.Viper
	configPath string
}

type Configs struct {
	fs          afero.Fs
	rootConfigs *Config
	projectDir  string
}

func IsDevMode() bool {
	environment, exists := os.LookupEnv("RAILWAY_ENV")
	return exists && environment == "develop"
}

// New reads the root config from the home directory and resolves links
// relative to the process working directory.
func New() (*Configs, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewWithFs(afero.NewOsFs(), workDir, homeDir), nil
}

// NewWithFs is New over an arbitrary filesystem.
func NewWithFs(fs afero.Fs, workDir, homeDir string) *Configs {
	// Root configs stored in root (~/.railway)
	// Includes token, current team and api url
	rootViper := viper.New()
	rootViper.SetFs(fs)
	rootPath := filepath.Join(homeDir, projectDirName, "config.json")
	rootViper.SetConfigFile(rootPath)
	// A missing root config is the logged-out state
	_ = rootViper.ReadInConfig()

	_ = rootViper.BindEnv(tokenKey, "RAILWAY_TOKEN")
	_ = rootViper.BindEnv(currentTeamKey, "RAILWAY_TEAM")
	_ = rootViper.BindEnv(apiURLKey, "RAILWAY_API_URL")

	return &Configs{
		fs: fs,
		rootConfigs: &Config{
			viper:      rootViper,
			configPath: rootPath,
		},
		projectDir: filepath.Join(workDir, projectDirName),
	}
}

// BindFlags lets --token, --team and --api-url take precedence over the
// environment and the root config file.
func (c *Configs) BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		tokenKey:       "token",
		currentTeamKey: "team",
		apiURLKey:      "api-url",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := c.rootConfigs.viper.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

func (c *Configs) newProjectViper(name string) *viper.Viper {
	v := viper.New()
	v.SetFs(c.fs)
	v.SetConfigFile(filepath.Join(c.projectDir, name))
	return v
}
