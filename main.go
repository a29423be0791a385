package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/railwayapp/envcli/cmd"
	"github.com/railwayapp/envcli/configs"
	"github.com/railwayapp/envcli/constants"
	"github.com/railwayapp/envcli/controller"
	"github.com/railwayapp/envcli/entity"
	"github.com/railwayapp/envcli/errors"
	"github.com/railwayapp/envcli/gateway"
	"github.com/railwayapp/envcli/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "railway",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "🚅 Railway. Infrastructure, Instantly.",
	Long:          "Interact with 🚅 Railway via CLI \n\n Deploy infrastructure, instantly. Docs: https://docs.railway.app",
}

/* contextualize converts a HandlerFunction to a cobra function. The handler
 * is built per invocation, once flags are parsed.
 */
func contextualize(fn func(*cmd.Handler) entity.HandlerFunction) entity.CobraFunction {
	return func(c *cobra.Command, args []string) (err error) {
		verbose, _ := c.Flags().GetBool("debug")
		logger.Init(os.Stderr, verbose)

		defer func() {
			if r := recover(); r != nil {
				logger.Debug().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("command panicked")
				err = errors.Panicked
			}
		}()

		cfg, err := configs.New()
		if err != nil {
			return err
		}
		if err := cfg.BindFlags(c.Flags()); err != nil {
			return err
		}
		handler := cmd.New(controller.New(cfg, gateway.New(cfg)), os.Stdout)

		req := &entity.CommandRequest{
			Cmd:  c,
			Args: args,
		}
		return fn(handler)(c.Context(), req)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Print debug information")
	rootCmd.PersistentFlags().String("token", "", "API token, overrides the logged in user")
	rootCmd.PersistentFlags().String("team", "", "Team to scope requests to when the link does not name one")
	rootCmd.PersistentFlags().String("api-url", "", "Railway API url")

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Manage environment variables of the linked project",
	}
	lsCmd := &cobra.Command{
		Use:     "ls [environment]",
		Aliases: []string{"list"},
		Short:   "List environment variables, optionally only those of one environment",
		RunE: contextualize(func(h *cmd.Handler) entity.HandlerFunction {
			return h.EnvList
		}),
	}
	lsCmd.Flags().String("format", cmd.FormatTable, "Output format: table, json or dotenv")

	envCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(envCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	if strings.Contains(err.Error(), "unknown command") && len(os.Args) > 1 {
		suggStr := "\nS"

		suggestions := rootCmd.SuggestionsFor(os.Args[1])
		if len(suggestions) > 0 {
			suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
		}

		fmt.Printf("Unknown command \"%s\" for \"%s\".%s"+
			"ee \"railway --help\" for available commands.\n",
			os.Args[1], rootCmd.CommandPath(), suggStr)
		os.Exit(1)
	}

	if msg := errors.Message(err); msg != "" && !stderrors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, msg)
	}
	os.Exit(errors.ExitCode(err))
}
