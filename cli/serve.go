package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"todolist/config"
	"todolist/database"
	"todolist/handlers"
	"todolist/internal/log"
)

func newServeCmd(app *App) *cobra.Command {
	cfg := config.Get()
	var addr, dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST backend and the browser page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.InitDB(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			router, err := handlers.NewRouter(cmd.Context(), db)
			if err != nil {
				return err
			}
			srv := handlers.NewServer(addr, router)

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", addr).Str("db", dbPath).Msg("server starting")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-cmd.Context().Done():
			}

			log.Info().Msg("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", cfg.Addr, "Listen address (env TODO_ADDR)")
	cmd.Flags().StringVar(&dbPath, "db", cfg.DatabasePath, "SQLite database path (env TODO_DB)")
	return cmd
}
