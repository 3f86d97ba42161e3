package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"go.uber.org/zap"

	"github.com/dph/portal/internal/config"
	"github.com/dph/portal/internal/database"
	"github.com/dph/portal/internal/database/repository"
	"github.com/dph/portal/internal/logging"
	"github.com/dph/portal/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	code := cmd.Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	configPath string
}

func (cmd *mainCmd) Run(ctx context.Context, args []string) (exitCode int) {
	root := cmd.command()
	if err := root.ParseAndRun(ctx, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(cmd.Stderr, "portal: %v\n", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) command() *ffcli.Command {
	fs := cmd.flagSet("portal")
	fs.StringVar(&cmd.configPath, "config", "", "config file (default "+config.DefaultPath()+")")

	root := &ffcli.Command{
		Name:       "portal",
		ShortUsage: "portal [-config FILE] <subcommand> [flags]",
		ShortHelp:  "Contact page, feedback and banner portal",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("PORTAL")},
		Subcommands: []*ffcli.Command{
			cmd.serveCommand(),
			cmd.kioskCommand(),
			cmd.readCommand(),
			cmd.migrateCommand(),
		},
	}
	root.Exec = func(_ context.Context, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unknown subcommand %q", args[0])
		}
		fmt.Fprintln(cmd.Stderr, ffcli.DefaultUsageFunc(root))
		return flag.ErrHelp
	}
	return root
}

func (cmd *mainCmd) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cmd.Stderr)
	return fs
}

// setup loads configuration and installs the global logger. With toFile
// set and no log.file configured, logs go to kiosk.log next to the database.
func (cmd *mainCmd) setup(toFile bool) (config.Config, func(), error) {
	cfg, err := config.Load(cmd.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if toFile && cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(filepath.Dir(cfg.Database.Path), "kiosk.log")
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logging.Install(logger), nil
}

// openStore migrates and opens the sqlite database and seeds defaults.
func openStore(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	busy := database.WithBusyTimeout(cfg.Database.BusyTimeout)
	if err := database.RunMigrations(cfg.Database.Path, busy); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path, busy)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	zap.S().Debugw("Database ready", "path", cfg.Database.Path)
	return db, nil
}

// writeDefaultConfig saves cfg to the config path when no file exists there
// yet and reports the path it wrote, or "".
func (cmd *mainCmd) writeDefaultConfig(cfg config.Config) (string, error) {
	path := cmd.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		return "", nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config: %w", err)
	}
	if err := config.Save(path, cfg); err != nil {
		return "", err
	}
	return path, nil
}

func newPortal(db *sql.DB, cfg config.Config) *service.Portal {
	return &service.Portal{
		Contact:  service.NewContactService(repository.NewContactRepo(db), cfg.Contact.CacheTTL),
		Feedback: &service.FeedbackService{Repo: repository.NewFeedbackRepo(db)},
		Banners:  &service.BannerService{Repo: repository.NewBannerRepo(db)},
	}
}
