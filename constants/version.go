package constants

// Version is set at build time with -ldflags "-X github.com/railwayapp/envcli/constants.Version=..."
var Version = "source"
