package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/decklab/chainquiz/internal/chainquiz"
	"github.com/decklab/chainquiz/internal/config"
	"github.com/decklab/chainquiz/internal/gameclient"
	"github.com/decklab/chainquiz/internal/session"
	"github.com/decklab/chainquiz/internal/term"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.LoadPlay()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	client := gameclient.New(cfg.ServerURL, cfg.RequestTimeout)
	presenter := term.NewPresenter(stdout)
	ctrl := session.NewController(client, presenter, logger)

	presenter.ShowMenu()

	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, args := fields[0], fields[1:]
		if done := dispatch(ctx, ctrl, presenter, stdout, cmd, args); done {
			return nil
		}

		// Ended is terminal for a controller; a fresh one serves the
		// next game.
		if ctrl.State() == session.StateEnded {
			ctrl = session.NewController(client, presenter, logger)
		}
	}
}

// dispatch runs one player command. It returns true when the player quits.
func dispatch(ctx context.Context, ctrl *session.Controller, presenter *term.Presenter, stdout io.Writer, cmd string, args []string) bool {
	switch cmd {
	case "start":
		name := strings.Join(args, " ")
		if err := ctrl.Start(ctx, name); err != nil {
			reportInputError(presenter, err, "usage: start <name>")
		}

	case "draw":
		if len(args) != 1 {
			presenter.ShowError("usage: draw easy|intermediate|hard")
			return false
		}
		if err := ctrl.Draw(ctx, chainquiz.Difficulty(args[0])); err != nil {
			reportInputError(presenter, err, "usage: draw easy|intermediate|hard")
		}

	case "answer":
		if len(args) != 1 {
			presenter.ShowError("usage: answer <number>")
			return false
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			presenter.ShowError("usage: answer <number>")
			return false
		}
		// Answers are shown numbered from 1.
		if err := ctrl.Answer(ctx, n-1); err != nil {
			reportInputError(presenter, err, "that answer number is not on the card")
		}

	case "stats":
		_ = ctrl.RefreshStats(ctx)

	case "board":
		_ = ctrl.Leaderboard(ctx)

	case "end":
		if _, err := ctrl.End(ctx); err != nil {
			reportInputError(presenter, err, "no game to end")
		}
		presenter.ShowMenu()

	case "quit", "exit":
		if ctrl.State() != session.StateNoSession && ctrl.State() != session.StateEnded {
			_, _ = ctrl.End(ctx)
		}
		fmt.Fprintln(stdout, "Thanks for playing!")
		return true

	case "help":
		presenter.ShowMenu()

	default:
		presenter.ShowError(fmt.Sprintf("unknown command %q, try help", cmd))
	}
	return false
}

func reportInputError(presenter *term.Presenter, err error, hint string) {
	switch {
	case errors.Is(err, session.ErrInvalidInput):
		presenter.ShowError(hint)
	case errors.Is(err, session.ErrNoSession):
		presenter.ShowError("start a game first: start <name>")
	}
	// Service failures are already surfaced through the presenter.
}
