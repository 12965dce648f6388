package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/gymstats/exercises"
	gymstatsmcp "github.com/2beens/liftlog/internal/gymstats/mcp"
	"github.com/2beens/liftlog/internal/gymstats/records"
	"github.com/2beens/liftlog/internal/gymstats/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mcpUsername string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve one user's training data over stdio MCP",
	Long: `Start a Model Context Protocol server on stdin/stdout.

The server is read only and scoped to the user given with --username.

  {
    "mcpServers": {
      "liftlog": {
        "command": "liftlogctl",
        "args": ["mcp", "--username", "serj"]
      }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		user, err := auth.NewUsersRepo(dbPool).GetByUsername(ctx, mcpUsername)
		if err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				return fmt.Errorf("no user named [%s]", mcpUsername)
			}
			return err
		}

		recordsRepo := records.NewRepo(dbPool)
		service := gymstatsmcp.NewContextService(
			gymstatsmcp.NewPoolSchemaRepo(dbPool),
			records.NewAnalyzer(recordsRepo),
			recordsRepo,
			exercises.NewRepo(dbPool),
			workouts.NewRepo(dbPool),
		)

		log.Infof("serving liftlog mcp for user %d over stdio", user.ID)
		server := gymstatsmcp.NewServer(service, user.ID)
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("mcp server: %w", err)
		}
		return nil
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpUsername, "username", "", "user whose data is served")
	_ = mcpCmd.MarkFlagRequired("username")

	rootCmd.AddCommand(mcpCmd)
}
