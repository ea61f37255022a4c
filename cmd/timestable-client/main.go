package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"times-table/internal/config"
	"times-table/internal/userclient"
)

func main() {
	var cfg config.Client
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("load config: %v", err)
	}

	server := flag.String("server", cfg.ServerURL, "times table service base URL")
	lang := flag.String("lang", "", "preferred language for elapsed times (en, de)")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	flag.Parse()

	err := userclient.Run(context.Background(), os.Stdin, os.Stdout, userclient.Config{
		ServerURL:   *server,
		Language:    *lang,
		Settings:    cfg.Game.Settings(),
		HTTPTimeout: *timeout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
