package cmd

import (
	"context"
	"fmt"
	"graphdb/config"
	"graphdb/core"
	"graphdb/database"
	"graphdb/logger"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile        string
	dbPath         string // Bound to --dbpath flag
	appLogPathFlag string
	logLevelFlag   string

	// graphService is built in PersistentPreRunE and shared by every command.
	graphService *core.GraphService
	closeBackend func()
)

var rootCmd = &cobra.Command{
	Use:   "graphdb",
	Short: "A property-graph server with a REST interface",
	Long: `graphdb stores nodes and typed, directed relationships carrying
property maps, and serves them over a REST API under /db/data/.

Data lives in an embedded SQLite database by default, or in a Neo4j
instance when database.backend is "neo4j".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == cobra.ShellCompNoDescRequestCmd {
			return nil
		}
		if closeBackend != nil {
			closeBackend()
			closeBackend = nil
		}
		if err := config.Init(cfgFile, appLogPathFlag, logLevelFlag); err != nil {
			return fmt.Errorf("failed to initialize config in PersistentPreRunE: %w", err)
		}

		precedence, err := core.ParseEndpointPrecedence(config.AppConfig.Graph.MissingEndpointPrecedence)
		if err != nil {
			return err
		}
		graph, closer, err := openBackend(cmd.Context())
		if err != nil {
			return err
		}
		closeBackend = closer
		graphService = core.NewGraphService(graph, precedence)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeBackend != nil {
			closeBackend()
			closeBackend = nil
		}
	},
}

// openBackend connects the configured graph store.
func openBackend(ctx context.Context) (core.GraphAccessor, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	switch config.AppConfig.Database.Backend {
	case config.BackendNeo4j:
		n := config.AppConfig.Neo4j
		logger.Info("PersistentPreRunE: Connecting to Neo4j at %s", n.URI)
		graph, err := database.OpenNeo4j(ctx, n.URI, n.Username, n.Password, n.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to neo4j at %s: %w", n.URI, err)
		}
		return graph, func() {
			if err := graph.Close(context.Background()); err != nil {
				logger.Error("Error closing neo4j driver: %v", err)
			}
		}, nil
	default:
		finalDBPath := config.AppConfig.Database.Path
		if dbPath != "" {
			finalDBPath = config.ExpandTilde(dbPath)
			logger.Info("PersistentPreRunE: Using database path from --dbpath flag: '%s'", finalDBPath)
		}
		if finalDBPath == "" {
			logger.Error("PersistentPreRunE: Database path is empty after checking flag and config! Falling back to 'graph.db' in CWD.")
			finalDBPath = "graph.db"
		}
		if err := database.InitDB(finalDBPath); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database at %s: %w", finalDBPath, err)
		}
		logger.Info("Database initialized at: %s", finalDBPath)
		return database.NewSQLiteGraph(database.DB), func() {
			if err := database.CloseDB(); err != nil {
				logger.Error("Error closing database: %v", err)
			}
		}, nil
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/graphdb/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "dbpath", "", "path to SQLite database file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&appLogPathFlag, "app-log", "", "path for the application log file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: DEBUG, INFO, WARN, ERROR (overrides config/default)")
}
