package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"

	"hearsay/brain"
	"hearsay/contract"
	"hearsay/domain"
	"hearsay/domain/event"
	"hearsay/helpindex"
	"hearsay/moderation"
	"hearsay/runtime"
	"hearsay/runtime/workers"
	"hearsay/scripts"
	"hearsay/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the engine lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	identity := domain.Identity{Name: config.BotName, Alias: config.BotAlias}
	if err := identity.Validate(); err != nil {
		return fmt.Errorf("bot identity error: %w", err)
	}

	charReplacement, err := characterRune(config.ModerationCharReplacement)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BrainFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	store := brain.NewBrain(db, log)

	// 3. Help index (Bluge)
	index, err := openHelpIndex(config, log)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("Closing help index...")
		_ = index.Close()
	}()

	// 4. Scripts & Registry
	registry := runtime.NewRegistry(log, identity)
	usages := func() []string {
		return lo.FilterMap(registry.All(), func(r domain.Responder, _ int) (string, bool) {
			return r.Usage, r.Usage != ""
		})
	}

	err = registry.Register(
		scripts.NewPing(consoleReply),
		scripts.NewRemember(store, consoleReply),
		scripts.NewHelp(index, usages, consoleReply),
	)
	if err != nil {
		return fmt.Errorf("script registration failed: %w", err)
	}
	if err = index.Add(registry.All()); err != nil {
		return fmt.Errorf("help index build failed: %w", err)
	}

	// 5. Intake filters
	words, err := moderation.LoadWords()
	if err != nil {
		return fmt.Errorf("moderation words loading failed: %w", err)
	}
	moderator, err := moderation.NewModerator(words.Words, charReplacement, log)
	if err != nil {
		return fmt.Errorf("moderator setup failed: %w", err)
	}
	filters := []contract.Filter{
		runtime.TextFilter{},
		moderation.NewFilter(moderator),
		runtime.NewLanguageFilter(config.AllowedLanguages...),
	}

	// 6. Engine wiring
	inbound := make(chan domain.Message, config.BufferSize)
	events := make(chan event.Event, config.BufferSize)
	telemetry := make(chan event.Event, config.BufferSize)

	dispatcher := runtime.NewDispatcher(log, registry, config.DispatchLimit, events)
	listener := runtime.NewListener(log, inbound, dispatcher, filters, events)

	counter := event.NewCounter()
	fanout := workers.NewEventFanout(log,
		[]contract.EventSink{sink.NewLogSink(log), sink.NewCounterSink(counter)},
		events, telemetry, config.SinkTimeout)
	telemetryWorker := workers.NewTelemetryWorker(log, config.MetricInterval, telemetry,
		[]event.Handler{
			event.NewHandlerFailedHandler(log, counter),
			event.NewLatencyHandler(log, config.LatencyThreshold),
			event.NewWorkerRestartedHandler(log, counter),
		})
	console := NewConsole(log, os.Stdin, inbound)

	// 7. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 8. Run under supervision until a signal arrives
	log.Info("Engine started", "bot", identity.Name, "alias", identity.Alias)
	sup := workers.NewSupervisor(log, config.RestartInterval, telemetry)
	sup.Add(listener, fanout, telemetryWorker, console)
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}

// openHelpIndex opens the on-disk index when a path is configured, otherwise
// an in-memory one: the index is rebuilt from the registry at every startup,
// so persistence is optional.
func openHelpIndex(config Config, log *slog.Logger) (*helpindex.Index, error) {
	if config.HelpIndexFilepath != "" {
		return helpindex.Open(config.HelpIndexFilepath, log)
	}
	return helpindex.OpenInMemory(log)
}

func characterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
