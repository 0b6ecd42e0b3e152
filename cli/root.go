package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"todolist/config"
	"todolist/internal/log"
	"todolist/internal/ui"
	"todolist/listclient"
)

type App struct {
	ServerURL string
	Revision  int
	LogLevel  string
}

func NewRootCmd() *cobra.Command {
	cfg := config.Get()
	app := &App{}

	cmd := &cobra.Command{
		Use:           "todolist",
		Short:         "A to-do list server and its clients",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Run the backend and the browser page on :8080
  todolist serve

  # Work with the list from the shell
  todolist add Buy milk
  todolist ls
  todolist done 1
  todolist rm 1

  # Interactive list
  todolist tui
`),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(app.LogLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", cfg.ServerURL, "Backend base URL (env TODO_SERVER_URL)")
	cmd.PersistentFlags().IntVar(&app.Revision, "revision", cfg.APIRevision, "API revision the client speaks: 1, 2 or 3 (env TODO_API_REVISION)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error|off (env LOG_LEVEL)")

	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newTUICmd(app))

	return cmd
}

func (app *App) client() (*listclient.Client, error) {
	rev, err := listclient.ParseRevision(app.Revision)
	if err != nil {
		return nil, err
	}
	return listclient.New(app.ServerURL, listclient.WithRevision(rev))
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	return 0
}
