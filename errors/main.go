package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/railwayapp/envcli/ui"
)

type RailwayError error

// ProjectConfigNotFound is internal; the not linked message is ProjectNotLinked.
var ProjectConfigNotFound = stderrors.New("project config not found")

var (
	UserConfigNotFound     RailwayError = fmt.Errorf("%s\nRun %s", ui.RedText("Not logged in."), ui.Bold("railway login"))
	Unauthorized           RailwayError = fmt.Errorf("%s\nRun %s to refresh your credentials.", ui.RedText("Your token is not valid."), ui.Bold("railway login"))
	ProjectNotLinked       RailwayError = fmt.Errorf("%s Your codebase isn’t linked to a project on Railway. Run %s to link it.", ui.RedText("Error!"), ui.Bold("railway link"))
	InvalidArgCount        RailwayError = fmt.Errorf("%s Invalid number of arguments. Usage: %s", ui.RedText("Error!"), ui.CyanText("`railway env ls [environment]`"))
	ProblemFetchingEnvs    RailwayError = fmt.Errorf("%s\nOne of our trains probably derailed!", ui.RedText("There was a problem fetching your environment variables."))
	ProblemFetchingProject RailwayError = fmt.Errorf("%s\nOne of our trains probably derailed!", ui.RedText("There was a problem fetching your project."))
	Panicked               RailwayError = fmt.Errorf("%s\nRun again with %s and report it at %s", ui.RedText("Something derailed."), ui.Bold("--debug"), ui.Bold("https://railway.app/help"))
	DuplicateDotenvKey     RailwayError = fmt.Errorf("%s Pass an environment to %s to pick one.", ui.RedText("The same key is set for more than one environment."), ui.Bold("railway env ls"))
	UnknownFormat          RailwayError = fmt.Errorf("%s Use one of table, json or dotenv.", ui.RedText("Unknown output format."))
)

// PartialLinkOverride is returned when only one of the link override
// variables is set.
func PartialLinkOverride(set, missing string) error {
	return fmt.Errorf("%s You specified %s but not %s. Set both or neither.", ui.RedText("Error!"), ui.Bold(set), ui.Bold(missing))
}
