package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/eatonphil/sqlclient"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var cfg = sqlclient.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "sqlclient",
	Short: "Command-line client for the SimpleDB query service",
	Long: `Connects to a SimpleDB query service and either reads SQL interactively
or, with --csv, imports the rows of a CSV file into a table.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return cfg.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(context.Background(), cfg)
	},
}

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".sqlclient_history")
	}

	registerFlags(rootCmd.Flags(), cfg)
}

func registerFlags(f *pflag.FlagSet, cfg *sqlclient.Config) {
	f.StringVarP(&cfg.ServerAddr, "server", "s", cfg.ServerAddr, "Listening address of the SimpleDB gRPC server")
	f.StringVar(&cfg.CSVFile, "csv", "", "CSV file to import instead of starting the shell")
	f.StringVarP(&cfg.Database, "db", "d", "", "Database to import into (with --csv)")
	f.StringVarP(&cfg.Table, "table", "t", "", "Table to import into (with --csv)")
	f.DurationVar(&cfg.DialTimeout, "connect-timeout", cfg.DialTimeout, "Time to wait for the server at startup, 0 to connect lazily")
	f.StringVar(&cfg.HistoryFile, "history-file", cfg.HistoryFile, "Shell history file, empty to disable")
	f.IntVar(&cfg.PageThreshold, "page-threshold", cfg.PageThreshold, "Ask before printing query results with more rows than this")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Output debug logs")
}

func run(ctx context.Context, cfg *sqlclient.Config) error {
	conn, err := sqlclient.Connect(ctx, cfg.ServerAddr, cfg.DialTimeout)
	if err != nil {
		return err
	}
	defer conn.Close()

	session := sqlclient.NewSession(conn.Client())

	if !cfg.Interactive() {
		importer := sqlclient.NewImporter(session, os.Stdout)
		importer.Progress = term.IsTerminal(int(os.Stdout.Fd()))
		_, err := importer.ImportFile(ctx, cfg.CSVFile, cfg.Database, cfg.Table)
		return err
	}

	sqlclient.PrintBanner(os.Stdout, cfg)

	in, err := sqlclient.NewReadlineInput(cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer in.Close()

	renderer := sqlclient.NewRenderer(os.Stdout, in, cfg.PageThreshold)
	return sqlclient.RunRepl(ctx, session, renderer, in, os.Stdout)
}

// reportError prints err unless the shell already did.
func reportError(w io.Writer, err error) {
	if errors.Is(err, sqlclient.ErrReported) {
		return
	}
	color.New(color.FgRed, color.Bold).Fprintf(w, "Error: %v\n", err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
