package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper/mines"
	"golang.org/x/sync/errgroup"
)

var (
	log = logrus.New()

	configPath string
	config     = DefaultConfig()
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
}

func setupLogging() error {
	level, err := config.Level()
	if err != nil {
		return err
	}
	formatter := &logrus.TextFormatter{ForceColors: config.Development()}

	for _, l := range []*logrus.Logger{log, mines.Log} {
		l.SetLevel(level)
		l.SetFormatter(formatter)
		l.SetOutput(os.Stderr)
	}

	if config.LogFile == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   config.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", config.LogFile, err)
	}
	for _, l := range []*logrus.Logger{log, mines.Log} {
		l.AddHook(hook)
		l.SetOutput(io.Discard) // keep the terminal for the board
	}
	return nil
}

// play reads commands from in until quit, end of input or ctx is done.
func play(ctx context.Context, s *session, in io.Reader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	s.printField()
	for {
		fmt.Fprint(s.out, "> ")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			err := executeCommand(s, line)
			if errors.Is(err, errQuit) {
				return err
			}
			if err != nil {
				log.WithError(err).WithField("command", line).Debug("command failed")
				fmt.Fprintf(s.out, "error: %s (h for help)\n", err)
			}
		}
	}
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if configPath != "" {
		if err := ReadConfig(configPath, config); err != nil {
			log.Fatalf("unable to read config %s: %s", configPath, err.Error())
		}
	}
	ApplyEnv(config)
	if err := config.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err.Error())
	}
	if err := setupLogging(); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	log.Info("starting up, mode = ", config.Mode)
	log.WithFields(config.Fields()).Debug("config")

	s, err := newSession(config.Params(), nil, os.Stdout)
	if err != nil {
		log.Fatal("unable to start a game: ", err)
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return play(gCtx, s, os.Stdin)
	})
	g.Go(func() error {
		<-gCtx.Done()
		return gCtx.Err()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		log.Printf("exit reason: %s\n", err)
	}
}
