package controller

import (
	"github.com/railwayapp/envcli/configs"
	"github.com/railwayapp/envcli/gateway"
)

type Controller struct {
	gtwy *gateway.Gateway
	cfg  *configs.Configs
}

func New(cfg *configs.Configs, gtwy *gateway.Gateway) *Controller {
	return &Controller{
		gtwy: gtwy,
		cfg:  cfg,
	}
}
