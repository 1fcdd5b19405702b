package cli

import (
	"github.com/spf13/cobra"

	"todocli/internal/config"
	"todocli/internal/server"
)

func newServeCmd(cfg config.Config) *cobra.Command {
	var addr, dbPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the bundled mock REST backend",
		Long: "Serves GET/POST /todos and PATCH/DELETE /todos/{id} backed by a local\n" +
			"SQLite file, standing in for a real backend during the tutorial.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.ListenAndServe(addr, dbPath)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", cfg.ServeAddr, "listen address")
	cmd.Flags().StringVar(&dbPath, "db", "todos.db", "SQLite database file")
	return cmd
}
