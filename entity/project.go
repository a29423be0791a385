package entity

type Project struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// LinkResult is one of *Linked, *NotLinked or *LinkError.
type LinkResult interface {
	linkResult()
}

// Linked means the local link was confirmed by the API.
type Linked struct {
	Project *Project
	// TeamID is the scope the project was validated under, "" for personal.
	TeamID string
}

// NotLinked means there is no usable link for the working directory, either
// because nothing was persisted or because the API no longer knows the project.
type NotLinked struct{}

// LinkError means validation could not be completed. ExitCode is what the
// process should exit with.
type LinkError struct {
	ExitCode int
	Err      error
}

func (*Linked) linkResult()    {}
func (*NotLinked) linkResult() {}
func (*LinkError) linkResult() {}
