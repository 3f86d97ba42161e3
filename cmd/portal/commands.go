package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/peterbourgon/ff/v3/ffcli"
	"go.uber.org/zap"

	"github.com/dph/portal/internal/api"
	"github.com/dph/portal/internal/client"
	"github.com/dph/portal/internal/config"
	"github.com/dph/portal/internal/contactpage"
	"github.com/dph/portal/internal/database"
	"github.com/dph/portal/internal/database/repository"
	"github.com/dph/portal/internal/highlight"
	"github.com/dph/portal/internal/service"
	"github.com/dph/portal/internal/testdata"
	"github.com/dph/portal/internal/tui"
)

func (cmd *mainCmd) serveCommand() *ffcli.Command {
	fs := cmd.flagSet("serve")
	addr := fs.String("addr", "", "listen address (overrides server.addr)")
	return &ffcli.Command{
		Name:       "serve",
		ShortUsage: "portal serve [-addr HOST:PORT]",
		ShortHelp:  "Run the REST API",
		FlagSet:    fs,
		Exec: func(ctx context.Context, _ []string) error {
			cfg, done, err := cmd.setup(false)
			if err != nil {
				return err
			}
			defer done()
			if *addr != "" {
				cfg.Server.Addr = *addr
			}

			db, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			p := newPortal(db, cfg)
			srv := &api.Server{
				Contact:         p.Contact,
				Feedback:        p.Feedback,
				Banners:         p.Banners,
				DB:              db,
				Addr:            cfg.Server.Addr,
				ShutdownTimeout: cfg.Server.ShutdownTimeout,
			}
			return srv.Run(ctx)
		},
	}
}

func (cmd *mainCmd) kioskCommand() *ffcli.Command {
	fs := cmd.flagSet("kiosk")
	return &ffcli.Command{
		Name:       "kiosk",
		ShortUsage: "portal kiosk",
		ShortHelp:  "Run the terminal kiosk",
		LongHelp: "Shows the contact page, feedback form and banner carousel.\n" +
			"Uses the local database unless kiosk.api_url is set.",
		FlagSet: fs,
		Exec: func(ctx context.Context, _ []string) error {
			// The TUI owns the terminal, so logs go to a file.
			cfg, done, err := cmd.setup(true)
			if err != nil {
				return err
			}
			defer done()

			order, err := contactpage.Order(cfg.Kiosk.ContentOrder)
			if err != nil {
				return err
			}
			backend, closeBackend, err := openBackend(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeBackend()

			app := tui.New(ctx, backend, tui.Options{
				Order:             order,
				HighlightInterval: cfg.Kiosk.HighlightInterval,
				CarouselInterval:  cfg.Kiosk.CarouselInterval,
			})
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("kiosk: %w", err)
			}
			return nil
		},
	}
}

func (cmd *mainCmd) readCommand() *ffcli.Command {
	fs := cmd.flagSet("read")
	interval := fs.Duration("interval", 0, "pause between regions (overrides kiosk.highlight_interval)")
	return &ffcli.Command{
		Name:       "read",
		ShortUsage: "portal read [-interval D]",
		ShortHelp:  "Read the contact page aloud, one region at a time",
		FlagSet:    fs,
		Exec: func(ctx context.Context, _ []string) error {
			cfg, done, err := cmd.setup(false)
			if err != nil {
				return err
			}
			defer done()
			if *interval > 0 {
				cfg.Kiosk.HighlightInterval = *interval
			}

			order, err := contactpage.Order(cfg.Kiosk.ContentOrder)
			if err != nil {
				return err
			}
			backend, closeBackend, err := openBackend(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeBackend()

			contact, err := backend.ContactSettings(ctx)
			if err != nil {
				return fmt.Errorf("fetch contact settings: %w", err)
			}
			return cmd.readAloud(ctx, order, cfg.Kiosk.HighlightInterval, contactpage.Texts(contact, false))
		},
	}
}

// readAloud prints each region as the sequencer reaches it and returns once
// the sequence ends or ctx is cancelled.
func (cmd *mainCmd) readAloud(ctx context.Context, order highlight.Order, interval time.Duration, texts map[string]string) error {
	changes := make(chan highlight.State, order.Len()+1)
	seq := highlight.New(order,
		highlight.WithInterval(interval),
		highlight.WithOnChange(func(s highlight.State) { changes <- s }),
	)
	defer seq.Close()

	seq.Toggle()
	for {
		select {
		case <-ctx.Done():
			zap.S().Infow("Reading interrupted", "cursor", seq.State().Cursor)
			return nil
		case s := <-changes:
			if !s.Active {
				return nil
			}
			fmt.Fprintf(cmd.Stdout, "%-18s %s\n", s.Cursor, texts[s.Cursor])
		}
	}
}

func (cmd *mainCmd) migrateCommand() *ffcli.Command {
	fs := cmd.flagSet("migrate")
	reset := fs.Bool("reset", false, "delete all portal data after migrating")
	demo := fs.Bool("demo", false, "load sample contact details, feedback and banners")
	return &ffcli.Command{
		Name:       "migrate",
		ShortUsage: "portal migrate [-reset] [-demo]",
		ShortHelp:  "Apply database migrations and seed defaults",
		LongHelp:   "Also writes the current settings to the config file if it does not exist yet.",
		FlagSet:    fs,
		Exec: func(ctx context.Context, _ []string) error {
			cfg, done, err := cmd.setup(false)
			if err != nil {
				return err
			}
			defer done()

			db, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if *reset {
				if err := (&service.MaintenanceService{DB: db}).Reset(ctx); err != nil {
					return err
				}
				if err := database.SeedDefaults(ctx, db); err != nil {
					return fmt.Errorf("seed defaults: %w", err)
				}
				fmt.Fprintln(cmd.Stdout, "portal data reset")
			}
			if *demo {
				repos := testdata.Repos{
					Contact:  repository.NewContactRepo(db),
					Feedback: repository.NewFeedbackRepo(db),
					Banners:  repository.NewBannerRepo(db),
				}
				if err := testdata.Seed(ctx, repos, database.Now()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.Stdout, "sample data loaded")
			}
			fmt.Fprintf(cmd.Stdout, "database ready at %s\n", cfg.Database.Path)
			written, err := cmd.writeDefaultConfig(cfg)
			if err != nil {
				return err
			}
			if written != "" {
				fmt.Fprintf(cmd.Stdout, "wrote config to %s\n", written)
			}
			return nil
		},
	}
}

// openBackend returns the API client when kiosk.api_url is set, and the
// local database services otherwise.
func openBackend(ctx context.Context, cfg config.Config) (tui.Backend, func(), error) {
	if cfg.Kiosk.APIURL != "" {
		c, err := client.New(cfg.Kiosk.APIURL)
		if err != nil {
			return nil, nil, err
		}
		return c, func() {}, nil
	}
	db, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return newPortal(db, cfg), func() { db.Close() }, nil
}
