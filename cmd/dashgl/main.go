package main

import (
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/dashgl/lib/config"
	dlog "github.com/fosdem/dashgl/lib/log"
	"github.com/fosdem/dashgl/lib/metrics"
	"github.com/fosdem/dashgl/lib/runner"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <config file>", os.Args[0])
	}
	cfg, err := config.Parse(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	// Validate already rejected bad levels
	level, _ := dlog.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(dlog.NewHandler(os.Stderr, &dlog.Options{
		HandlerOptions: slog.HandlerOptions{Level: level},
		Colour:         os.Getenv("NO_COLOR") == "",
	})))

	r, err := runner.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Metrics != nil {
		srv := metrics.ServeInBackground(cfg.Metrics.Bind)
		defer srv.Close()
	}

	err = r.Run()
	if err != nil {
		log.Fatalf("could not run %s: %s", cfg.Sample, err)
	}
}
