package entity

type EnvTarget string

const (
	EnvTargetProduction  EnvTarget = "production"
	EnvTargetPreview     EnvTarget = "preview"
	EnvTargetDevelopment EnvTarget = "development"
)

// IsGlobal reports whether the variable applies to every target.
func (t EnvTarget) IsGlobal() bool {
	return t == ""
}

type EnvVariable struct {
	Key    string    `json:"key"`
	Value  string    `json:"value"`
	Target EnvTarget `json:"target,omitempty"`
	// CreatedAt and UpdatedAt are milliseconds since the epoch. 0 means the
	// API did not report a time.
	CreatedAt int64 `json:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}

type GetEnvVariablesRequest struct {
	ProjectID string
	TeamID    string    // Optional
	Target    EnvTarget // Optional
}
