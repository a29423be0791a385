package cmd

import (
	"context"
	"io"
	"time"

	"github.com/railwayapp/envcli/entity"
)

// projectController is what the command handlers need from
// *controller.Controller.
type projectController interface {
	ResolveLink(ctx context.Context) entity.LinkResult
	GetEnvVariables(ctx context.Context, req *entity.GetEnvVariablesRequest) ([]*entity.EnvVariable, error)
}

type Handler struct {
	ctrl projectController
	out  io.Writer
	now  func() time.Time
}

func New(ctrl projectController, out io.Writer) *Handler {
	return &Handler{
		ctrl: ctrl,
		out:  out,
		now:  time.Now,
	}
}
