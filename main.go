package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"golang.org/x/sync/errgroup"

	"github.com/wowcore/realonline/realonline"
	"github.com/wowcore/realonline/realonline/database"
	"github.com/wowcore/realonline/realonline/logger"
	"github.com/wowcore/realonline/realonline/scripting"
	"github.com/wowcore/realonline/realonline/world"
)

var (
	version = "dev"
	commit  = "unknown"
)

const tickInterval = time.Second

// consoleResponder routes command output to the server console.
type consoleResponder struct{}

func (consoleResponder) SendSysMessage(text string)         { fmt.Println(text) }
func (consoleResponder) SendAreaTriggerMessage(text string) { fmt.Println(text) }

func main() {
	slog.SetDefault(slog.New(logger.NewHandler()))

	slog.Info("Starting RealOnline world-server modules",
		slog.String("version", version),
		slog.String("commit", commit))

	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := realonline.LoadConfig(*path)
	if err != nil {
		logger.LogError("Failed to load configuration", err)
		os.Exit(-1)
	}
	slog.SetDefault(slog.New(logger.Configure(cfg.Log.Level, cfg.Log.Format, cfg.Log.AddSource)))
	slog.Info("Configuration loaded successfully")

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		logger.LogError("Database connection failed", err,
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	if err := db.InitializeSchema(ctx); err != nil {
		logger.LogError("Failed to initialize database schema", err)
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully")

	sessions := world.NewManager()

	m := realonline.New(*cfg, version, commit)
	m.DB = db
	m.Sessions = sessions
	m.SetupRepositories()

	reg := scripting.NewRegistry()
	m.Register(reg)
	logger.LogSystem("Modules registered",
		slog.Int("commands", len(reg.Commands())))

	sched, err := gocron.NewScheduler()
	if err != nil {
		logger.LogError("Failed to create scheduler", err)
		os.Exit(-1)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(tickInterval),
		gocron.NewTask(func() {
			reg.OnUpdate(ctx, tickInterval)
		}),
	)
	if err != nil {
		logger.LogError("Failed to schedule world tick", err)
		os.Exit(-1)
	}
	sched.Start()
	defer func() {
		if err := sched.Shutdown(); err != nil {
			logger.LogError("Scheduler shutdown failed", err)
		}
	}()

	g, ctx := errgroup.WithContext(ctx)

	// The reader goroutine stays blocked in Scan across shutdown; only the
	// dispatch goroutine joins the group so Wait does not hang on stdin.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	// Console command loop. Commands marked console-usable dispatch with a
	// nil player, same as the host's GM console would.
	g.Go(func() error {
		resp := consoleResponder{}
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				line = strings.TrimPrefix(line, ".")

				name, args, _ := strings.Cut(line, " ")
				if !reg.Dispatch(ctx, strings.ToLower(name), strings.TrimSpace(args), nil, resp) {
					fmt.Printf("Unknown or unavailable command: %s\n", name)
				}
			}
		}
	})

	slog.Info("World-server shell is running. Press CTRL-C to exit.")
	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.LogError("Shutdown with error", err)
	}
	slog.Info("Shutting down...")
}
