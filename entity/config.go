package entity

import "strings"

type RootConfig struct {
	User        UserConfig `json:"user"`
	CurrentTeam string     `json:"currentTeam,omitempty"`
	APIURL      string     `json:"apiUrl,omitempty"`
}

type UserConfig struct {
	Token string `json:"token"`
}

// LinkState is the on-disk association between a working directory and a
// remote project. It is only ever read by this CLI.
type LinkState struct {
	ProjectID string `json:"projectId"`
	OrgID     string `json:"orgId,omitempty"`
}

// TeamID returns the team scope carried by the link, or "" for a personal
// project.
func (l *LinkState) TeamID() string {
	if l == nil || !IsTeamID(l.OrgID) {
		return ""
	}
	return l.OrgID
}

func IsTeamID(id string) bool {
	return strings.HasPrefix(id, teamIDPrefix) && len(id) > len(teamIDPrefix)
}

const teamIDPrefix = "team_"
