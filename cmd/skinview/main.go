// Package main provides the CLI entry point for skinview.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/skinview/pkg/adapters/filesink"
	"github.com/user/skinview/pkg/adapters/ggrenderer"
	"github.com/user/skinview/pkg/adapters/logger"
	"github.com/user/skinview/pkg/adapters/nullsink"
	"github.com/user/skinview/pkg/adapters/osfilesystem"
	"github.com/user/skinview/pkg/config"
	"github.com/user/skinview/pkg/orchestrator"
	"github.com/user/skinview/pkg/ports"
	"github.com/user/skinview/pkg/stages/avatar"
	"github.com/user/skinview/pkg/stages/cape"
	"github.com/user/skinview/pkg/stages/preview"
	"github.com/user/skinview/pkg/stages/regionmap"
	"github.com/user/skinview/pkg/summarizer"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "skinview",
		Usage:   l10n.T("Render avatars and previews from Minecraft skin textures"),
		Version: version,
		Commands: []*cli.Command{
			renderCommand(orchestrator.KindAvatar,
				l10n.T("Render a square face avatar"),
				sizeFlag(l10n.T("Avatar edge length in pixels (default: 128)")), viewFlag(), modelFlag()),
			renderCommand(orchestrator.KindPreview,
				l10n.T("Render a full body preview"),
				sizeFlag(l10n.T("Preview height in pixels (default: 256)")), sideFlag(), modelFlag(), gapFlag()),
			renderCommand(orchestrator.KindCape,
				l10n.T("Render a cape preview")),
			renderCommand(orchestrator.KindRegions,
				l10n.T("Draw the region map over a texture"),
				modelFlag(),
				&cli.IntFlag{Name: "scale", Usage: l10n.T("Screen pixels per texture unit (default: 8)")},
				&cli.StringFlag{Name: "background", Usage: l10n.T("Background color (hex, e.g., #282828)")}),
			batchCommand(),
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Println(l10n.F("skinview version %s", version))
					return nil
				},
			},
		},
	}
}

// commonFlags are accepted by every render command.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("Configuration file (YAML)")},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: l10n.T("Output format (png, jpeg, gif, bmp, tiff)")},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Usage: l10n.T("JPEG quality (1-100)")},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output")},
		&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output")},
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output")},
	}
}

func sizeFlag(usage string) cli.Flag {
	return &cli.IntFlag{Name: "size", Aliases: []string{"s"}, Usage: usage}
}

func viewFlag() cli.Flag {
	return &cli.StringFlag{Name: "view", Usage: l10n.T("Head face to show (front, left, right, back)")}
}

func sideFlag() cli.Flag {
	return &cli.StringFlag{Name: "side", Usage: l10n.T("Poses to show (both, front, back)")}
}

func modelFlag() cli.Flag {
	return &cli.StringFlag{Name: "model", Aliases: []string{"m"}, Usage: l10n.T("Arm model (steve, alex)")}
}

func gapFlag() cli.Flag {
	return &cli.IntFlag{Name: "gap", Usage: l10n.T("Gap between front and back poses in texture units")}
}

func renderCommand(kind orchestrator.Kind, usage string, flags ...cli.Flag) *cli.Command {
	flags = append(flags,
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output image path (required)")},
		&cli.BoolFlag{Name: "base64", Usage: l10n.T("Read the input file as base64 text")},
	)
	return &cli.Command{
		Name:      kind.String(),
		Usage:     usage,
		ArgsUsage: "<texture>",
		Flags:     append(flags, commonFlags()...),
		Action: func(c *cli.Context) error {
			return runRender(c, kind)
		},
	}
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: l10n.T("Render every job listed in a configuration file"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Required: true, Usage: l10n.T("Configuration file (YAML)")},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: l10n.T("Number of parallel workers (0 = CPU count)")},
			&cli.StringFlag{Name: "summary", Usage: l10n.T("Output execution summary to file (Markdown format)")},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output")},
			&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output")},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output")},
		},
		Action: runBatch,
	}
}

func runRender(c *cli.Context, kind orchestrator.Kind) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("Exactly one texture argument is required"), 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	jc := config.JobConfig{
		Kind:   kind.String(),
		Input:  c.Args().First(),
		Output: c.String("output"),
		Base64: c.Bool("base64"),
		Size:   c.Int("size"),
	}
	if c.IsSet("gap") {
		gap := c.Int("gap")
		jc.Gap = &gap
	}
	job, err := cfg.BuildJob(jc)
	if err != nil {
		return err
	}
	// Paths given on the command line are relative to the working directory.
	job.Input = jc.Input
	job.Output = jc.Output

	ctx, log, cancel := setup(c, cfg)
	defer cancel()

	orch, _, err := newOrchestrator(cfg, log)
	if err != nil {
		return err
	}

	if _, err := orch.Render(ctx, job); err != nil {
		return err
	}
	log.Info("Output saved to %s", job.Output)
	return nil
}

func runBatch(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	jobs, err := cfg.BuildJobs()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return cli.Exit(l10n.T("No jobs in configuration"), 2)
	}

	ctx, log, cancel := setup(c, cfg)
	defer cancel()

	orch, fs, err := newOrchestrator(cfg, log)
	if err != nil {
		return err
	}

	if jobs, err = orch.ExpandJobs(jobs); err != nil {
		return err
	}

	results, runErr := orch.RunBatch(ctx, jobs)

	if path := c.String("summary"); path != "" {
		summary := summarizer.NewBuilder().
			WithSettings(summarizer.Settings{ConfigPath: c.String("config"), Workers: cfg.Workers}).
			WithResults(results).
			Build()
		w := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
		if err := w.Write(path, summary); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", path)
		}
	}

	if runErr != nil {
		return runErr
	}
	for _, r := range results {
		if r.Err != nil {
			return cli.Exit(l10n.T("Some jobs failed"), 1)
		}
	}
	return nil
}

// loadConfig reads --config when given and applies flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
	}

	overrides := map[string]*string{
		"model":      &cfg.Model,
		"view":       &cfg.View,
		"side":       &cfg.Side,
		"format":     &cfg.Format,
		"log-level":  &cfg.LogLevel,
		"debug-dir":  &cfg.DebugDir,
		"background": &cfg.RegionBackground,
	}
	for name, dst := range overrides {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	if c.IsSet("quality") {
		cfg.Quality = c.Int("quality")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("scale") {
		cfg.RegionScale = c.Int("scale")
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setup creates the logger and a context cancelled on SIGINT or SIGTERM.
func setup(c *cli.Context, cfg config.Config) (context.Context, ports.Logger, context.CancelFunc) {
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	ctx, cancel := context.WithCancel(c.Context)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, log, func() {
		signal.Stop(sigCh)
		cancel()
	}
}

func newOrchestrator(cfg config.Config, log ports.Logger) (*orchestrator.Orchestrator, ports.FileSystem, error) {
	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	orch := orchestrator.New(
		avatar.NewStage(log),
		preview.NewStage(log),
		cape.NewStage(log),
		regionmap.NewStage(renderer, sink, log),
		renderer,
		fs,
		sink,
		log,
		cfg.ToOrchestratorConfig(),
	)
	return orch, fs, nil
}
