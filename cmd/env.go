package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/railwayapp/envcli/entity"
	"github.com/railwayapp/envcli/errors"
	"github.com/railwayapp/envcli/ui"
)

const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatDotenv = "dotenv"
)

var envColumns = []ui.Column{
	{Name: "key", AlignRight: true},
	{Name: "value"},
	{Name: "environment"},
	{Name: "created"},
	{Name: "updated"},
}

// EnvList prints the environment variables of the linked project, optionally
// only those of the environment named by the single argument.
func (h *Handler) EnvList(ctx context.Context, req *entity.CommandRequest) error {
	if len(req.Args) > 1 {
		return &errors.ExitError{Code: 1, Err: errors.InvalidArgCount}
	}
	format, err := formatFlag(req)
	if err != nil {
		return &errors.ExitError{Code: 1, Err: err}
	}

	var project *entity.Project
	var teamID string
	switch link := h.ctrl.ResolveLink(ctx).(type) {
	case *entity.LinkError:
		return &errors.ExitError{Code: link.ExitCode, Err: link.Err}
	case *entity.NotLinked:
		return &errors.ExitError{Code: 1, Err: errors.ProjectNotLinked}
	case *entity.Linked:
		project, teamID = link.Project, link.TeamID
	default:
		panic(fmt.Sprintf("unexpected link result %T", link))
	}

	var target entity.EnvTarget
	if len(req.Args) == 1 {
		target = entity.EnvTarget(req.Args[0])
	}
	stamp := ui.Stamp()

	envs, err := h.ctrl.GetEnvVariables(ctx, &entity.GetEnvVariablesRequest{
		ProjectID: project.Id,
		TeamID:    teamID,
		Target:    target,
	})
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		return h.printJSON(envs)
	case FormatDotenv:
		return h.printDotenv(envs)
	}

	color := ui.Color(h.out)
	fmt.Fprintf(h.out, "> %s found under %s %s\n",
		ui.Plural(len(envs), "Environment Variable", "Environment Variables"),
		color.Bold(project.Name),
		color.BrightBlack(stamp()),
	)
	fmt.Fprint(h.out, ui.Table(color, envColumns, h.envRows(envs)))
	return nil
}

func (h *Handler) envRows(envs []*entity.EnvVariable) [][]ui.Cell {
	now := h.now()
	rows := make([][]ui.Cell, 0, len(envs))
	for _, env := range envs {
		target := ui.Cell{Text: string(env.Target)}
		if env.Target.IsGlobal() {
			target = ui.Cell{Text: "global", Dim: true}
		}
		rows = append(rows, []ui.Cell{
			{Text: env.Key},
			{Text: env.Value},
			target,
			{Text: ui.Ago(env.CreatedAt, now)},
			{Text: ui.Ago(env.UpdatedAt, now)},
		})
	}
	return rows
}

func (h *Handler) printJSON(envs []*entity.EnvVariable) error {
	if envs == nil {
		envs = []*entity.EnvVariable{}
	}
	encoded, err := json.MarshalIndent(envs, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(h.out, string(encoded))
	return err
}

// printDotenv writes KEY=value lines. A key set for several environments has
// no single value, so it is rejected.
func (h *Handler) printDotenv(envs []*entity.EnvVariable) error {
	values := make(map[string]string, len(envs))
	for _, env := range envs {
		if _, ok := values[env.Key]; ok {
			return &errors.ExitError{Code: 1, Err: errors.DuplicateDotenvKey}
		}
		values[env.Key] = env.Value
	}
	if len(values) == 0 {
		return nil
	}
	encoded, err := godotenv.Marshal(values)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(h.out, encoded)
	return err
}

func formatFlag(req *entity.CommandRequest) (string, error) {
	if req.Cmd == nil || req.Cmd.Flags().Lookup("format") == nil {
		return FormatTable, nil
	}
	format, err := req.Cmd.Flags().GetString("format")
	if err != nil {
		return "", err
	}
	switch format {
	case FormatTable, FormatJSON, FormatDotenv:
		return format, nil
	}
	return "", errors.UnknownFormat
}
