package main

import (
	"chat-view/domain"
	"chat-view/domain/textcomponent"
	"chat-view/infrastructure/httpapi"
	"chat-view/projection"
	"chat-view/repositories"
	"chat-view/runtime"
	"chat-view/runtime/workers"
	"chat-view/sink"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

const helpText = `/more       load older messages
/who        list online and recently offline members
/click N    activate the N-th clickable element of the last message
/clear      drop the local history and reload it
/quit       leave
anything else is sent to the chat`

var errQuit = errors.New("quit")

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the chat and write to it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig[Config]()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, config)
		},
	}
}

func runWatch(ctx context.Context, config Config) error {
	log := logs.GetLoggerFromString(config.LogLevel)
	if config.NoColor {
		color.Disable()
	}

	db, err := repositories.OpenBadger(config.OfflineCachePath, log)
	if err != nil {
		return err
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()

	store := repositories.NewOfflineRepository(db, log, config.OfflineRetention)
	presence := projection.NewPresence(log, store, config.OfflineRetention, nil)
	if err := presence.Restore(ctx); err != nil {
		log.Warn("Offline cache unreadable, starting empty", "error", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".chatview_history"),
		HistoryLimit:    100,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("initializing readline: %w", err)
	}
	defer func() { _ = rl.Close() }()

	var coordinator *runtime.Coordinator
	actions := textcomponent.ActionFuncs{
		OnOpenURL: func(url string) { fmt.Fprintf(rl.Stdout(), "open %s\n", url) },
		OnCommandRun: func(command string) {
			if err := coordinator.Send(ctx, command); err != nil {
				fmt.Fprintf(rl.Stderr(), "%v\n", err)
			}
		},
		OnCommandSuggest: func(command string) { _, _ = rl.WriteStdin([]byte(command)) },
		OnChangePage:     func(page int) { fmt.Fprintf(rl.Stdout(), "page %d\n", page) },
		OnCopy:           func(text string) { fmt.Fprintf(rl.Stdout(), "copied: %s\n", text) },
	}

	terminal := sink.NewTerminalSink(rl.Stdout(), log, actions)
	registry := runtime.NewRegistry()
	registry.Subscribe(config.SenderID, terminal)

	coordinator = runtime.NewCoordinator(
		log,
		httpapi.NewClient(log, config.APIURL, config.APIToken, config.RequestTimeout),
		projection.NewTimeline(config.MaxRetained),
		presence,
		registry,
		workers.NewTickerScheduler(ctx, log),
		runtime.CoordinatorConfig{
			SenderID:        config.SenderID,
			PageSize:        config.PageSize,
			MessageInterval: config.MessageInterval,
			StatusInterval:  config.StatusInterval,
			RequestTimeout:  config.RequestTimeout,
		},
	)
	if err := coordinator.Start(ctx); err != nil {
		return fmt.Errorf("chat view failed to start: %w", err)
	}
	defer coordinator.Stop()

	// Unblocks Readline on SIGINT/SIGTERM
	go func() {
		<-ctx.Done()
		_ = rl.Close()
	}()

	p := &prompt{out: rl.Stdout(), view: coordinator, sink: terminal}
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if err := p.handle(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(rl.Stderr(), "%v\n", err)
		}
	}
}

type chatView interface {
	LoadOlder(ctx context.Context) (bool, error)
	Send(ctx context.Context, content string) error
	Reset()
}

type viewSink interface {
	Activate(n int) error
	Presence() domain.PresenceView
}

// prompt interprets the lines typed in watch mode.
type prompt struct {
	out  io.Writer
	view chatView
	sink viewSink
}

func (p *prompt) handle(ctx context.Context, line string) error {
	input := strings.TrimSpace(line)
	command, arg, _ := strings.Cut(input, " ")
	switch command {
	case "":
		return nil
	case "/quit", "/exit":
		return errQuit
	case "/help":
		_, err := fmt.Fprintln(p.out, helpText)
		return err
	case "/more":
		loaded, err := p.view.LoadOlder(ctx)
		if err != nil {
			return err
		}
		if !loaded {
			_, err = fmt.Fprintln(p.out, "nothing older to load")
		}
		return err
	case "/who":
		writePresenceTable(p.out, p.sink.Presence())
		return nil
	case "/clear":
		p.view.Reset()
		return nil
	case "/click":
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return fmt.Errorf("usage: /click N")
		}
		return p.sink.Activate(n)
	default:
		return p.view.Send(ctx, input)
	}
}
