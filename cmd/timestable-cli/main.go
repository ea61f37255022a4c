package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"

	"times-table/internal/cli"
	"times-table/internal/config"
	"times-table/internal/game"
	"times-table/internal/timefmt"
)

func supportedLocales() string {
	tags := timefmt.Supported()
	names := make([]string, len(tags))
	for idx, tag := range tags {
		names[idx] = tag.String()
	}
	return strings.Join(names, ", ")
}

func main() {
	var cfg config.CLI
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("load config: %v", err)
	}

	minOperand := flag.Int("min", cfg.Game.MinOperand, "smallest factor")
	maxOperand := flag.Int("max", cfg.Game.MaxOperand, "largest factor")
	length := flag.Int("length", cfg.Game.SessionLength, "number of questions (0 = unlimited)")
	locale := flag.String("locale", cfg.Locale, "language for elapsed time ("+supportedLocales()+")")
	flag.Parse()

	tag, err := language.Parse(*locale)
	if err != nil {
		config.Exitf("invalid locale %q: %v", *locale, err)
	}

	err = cli.Run(context.Background(), os.Stdin, os.Stdout, cli.Config{
		Settings: game.Settings{MinOperand: *minOperand, MaxOperand: *maxOperand, Length: *length},
		Language: timefmt.Match(tag),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
