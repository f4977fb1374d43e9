package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/navkit/geofun"
	"github.com/navkit/geofun/internal/command"
	"github.com/navkit/geofun/internal/config"
	"github.com/navkit/geofun/internal/log"
)

func main() {
	var (
		configPath string
		envPath    string
		format     string
		globe      bool
	)
	flag.StringVar(&configPath, "config", "geofun.yaml", "Path to YAML config")
	flag.StringVar(&envPath, "env", ".env", "Path to a .env file with GEOFUN_* settings")
	flag.StringVar(&format, "format", "", "Output format: text, json or msgpack")
	flag.BoolVar(&globe, "globe", false, "Use the spherical Earth model instead of WGS84")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: geofun [flags] <command> [args]\n")
		flag.PrintDefaults()
		command.Usage(flag.CommandLine.Output())
	}
	flag.Parse()

	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if globe {
		cfg.Ellipsoid = "globe"
	}

	lg := log.New(cfg.Log.Level, cfg.Log.Dir)
	defer lg.Close()

	solver := geofun.WGS84
	if cfg.Ellipsoid == "globe" {
		solver = geofun.Globe
	}

	err = command.Run(flag.Args(), command.Env{
		Stdout:   os.Stdout,
		Format:   cfg.Output.Format,
		Segments: cfg.Split.Segments,
		Model:    geofun.NewModel(solver),
		Log:      lg,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "geofun: %v\n", err)
		if errors.Is(err, command.ErrUsage) {
			flag.Usage()
		}
		lg.Close()
		os.Exit(1)
	}
}
