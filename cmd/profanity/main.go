package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/profanity-filter/internal/config"
	"github.com/profanity-filter/internal/logger"
	"github.com/profanity-filter/internal/service"
	"github.com/profanity-filter/internal/validation"
	"go.uber.org/zap"
)

const (
	exitOK      = 0
	exitProfane = 1
	exitUsage   = 2
	exitFailure = 3
)

const usage = `usage: profanity [flags] <detect|extract|mask> [text...]

Reads the text from the remaining arguments, or from stdin when none are given.
detect exits with status 1 when profanity is found.

flags:
`

func main() {
	logger.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	_ = logger.Log.Sync()
	os.Exit(code)
}

// wordFiles collects repeated -words lang=path flags.
type wordFiles map[string][]string

func (w wordFiles) String() string {
	parts := make([]string, 0, len(w))
	for lang, paths := range w {
		parts = append(parts, lang+"="+strings.Join(paths, ","))
	}
	return strings.Join(parts, " ")
}

func (w wordFiles) Set(v string) error {
	lang, path, ok := strings.Cut(v, "=")
	if !ok || lang == "" || path == "" {
		return errors.New("expected lang=path")
	}
	w[lang] = append(w[lang], path)
	return nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("profanity", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	lang := fs.String("lang", "", "pin matching to one language (default: all supported languages)")
	caseSensitive := fs.Bool("case-sensitive", false, "match case exactly")
	noLeet := fs.Bool("no-leet", false, "disable leet speak and separator tolerance")
	extra := wordFiles{}
	fs.Var(extra, "words", "import a word list file, as lang=path (repeatable; .txt, .json, .yaml)")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return exitUsage
	}
	command := fs.Arg(0)
	if command != "detect" && command != "extract" && command != "mask" {
		fmt.Fprintf(stderr, "unknown command %q\n", command)
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	logger.InitSentry(cfg.SentryDSN, cfg.AppEnv)
	defer sentry.Flush(2 * time.Second)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lang":
			cfg.Language = *lang
		case "case-sensitive":
			cfg.Filter.CaseSensitive = *caseSensitive
		case "no-leet":
			cfg.Filter.DetectLeetSpeak = !*noLeet
		}
	})
	for l, paths := range extra {
		cfg.WordFiles[l] = append(cfg.WordFiles[l], paths...)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	svc, err := service.NewProfanityServiceFromConfig(ctx, cfg)
	if err != nil {
		logger.Error("Failed to build profanity filter", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	text, err := readText(fs.Args()[1:], stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	if !validation.ContainsOnlyPrintable(text) {
		logger.Debug("Dropping control characters from input")
		text = validation.SanitizeText(text)
	}
	if err := validation.ValidateText(text, validation.InputLimits(cfg.MaxTextLength)); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	switch command {
	case "detect":
		if svc.IsBad(text) {
			fmt.Fprintln(stdout, "true")
			return exitProfane
		}
		fmt.Fprintln(stdout, "false")
	case "extract":
		for _, w := range svc.Words(text) {
			fmt.Fprintln(stdout, w)
		}
	case "mask":
		fmt.Fprintln(stdout, svc.Clean(text))
	}
	return exitOK
}

func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r"), nil
}
