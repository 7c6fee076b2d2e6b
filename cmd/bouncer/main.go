// Package main provides the CLI entry point for bouncer.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/bouncer/pkg/adapters/filesink"
	"github.com/user/bouncer/pkg/adapters/ggrenderer"
	"github.com/user/bouncer/pkg/adapters/jpegdecoder"
	"github.com/user/bouncer/pkg/adapters/logger"
	"github.com/user/bouncer/pkg/adapters/mpffencoder"
	"github.com/user/bouncer/pkg/adapters/nullsink"
	"github.com/user/bouncer/pkg/adapters/osfilesystem"
	"github.com/user/bouncer/pkg/config"
	"github.com/user/bouncer/pkg/orchestrator"
	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
	"github.com/user/bouncer/pkg/stages/convert"
	"github.com/user/bouncer/pkg/stages/decode"
	"github.com/user/bouncer/pkg/stages/probe"
	"github.com/user/bouncer/pkg/stages/sequence"
	"github.com/user/bouncer/pkg/stages/trajectory"
	"github.com/user/bouncer/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Run     RunCmd     `cmd:"" default:"withargs" help:"Render the bouncing sphere over a JPEG image."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// RunCmd defines the run subcommand. Unset flags fall back to the config
// file, then to built-in defaults.
type RunCmd struct {
	// Required arguments
	Input string `arg:"" help:"JPEG file (.jpg or .jpeg)."`

	// Output options
	OutputDir   *string `short:"o" help:"Directory for frameNNN.mpff files (default: current directory)."`
	StrideAlign *int    `help:"Pad base frame rows to a multiple of this many bytes."`
	Summary     *string `help:"Write a Markdown run summary to this path."`

	// Config file
	Config string `short:"c" type:"path" help:"YAML config file."`

	// Debug options
	Debug    bool    `short:"d" help:"Enable debug output."`
	DebugDir *string `help:"Directory for debug output (default: ./debug)."`

	// Logging options
	LogLevel *string `short:"l" help:"Log level (debug, info, warn, error)."`
	Quiet    bool    `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	parser, err := kong.New(&cli,
		kong.Name("bouncer"),
		kong.Description("Render a bouncing sphere over a JPEG image as a sequence of raw frames."),
	)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			_ = parseErr.Context.PrintUsage(true)
		}
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err.Error()))
		os.Exit(pipeline.CategoryArgument.ExitCode())
	}

	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err.Error()))
		os.Exit(pipeline.CategoryOf(err).ExitCode())
	}
}

// Run executes the run command.
func (cmd *RunCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return pipeline.ArgumentError("config", err)
	}

	// Create logger
	var log ports.Logger
	if cfg.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(cfg.Level())
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	decoder := jpegdecoder.New()
	encoder := mpffencoder.New()

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return pipeline.ResourceError("debug", fmt.Errorf("create debug directory: %w", err))
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	probeStage := probe.NewStage(fs, log)
	decodeStage := decode.NewStage(decoder, log)
	convertStage := convert.NewStage(log)
	trajectoryStage := trajectory.NewStage(renderer, log)
	sequenceStage := sequence.NewStage(encoder, fs, log)

	// Create orchestrator
	orch := orchestrator.New(
		probeStage,
		decodeStage,
		convertStage,
		trajectoryStage,
		sequenceStage,
		fs,
		sink,
		log,
	)

	// Run pipeline
	result, runErr := orch.Run(ctx, cfg.ToOrchestratorConfig(cmd.Input))

	if cfg.Summary != "" && result.FrameCount > 0 {
		if err := writeSummary(cfg, fs, result); err != nil {
			log.Warn("Failed to write summary: %s", err.Error())
		} else {
			log.Info("Summary saved to %s", cfg.Summary)
		}
	}

	return runErr
}

// buildConfig layers defaults, the config file and flags, in that order.
func (cmd *RunCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.OutputDir != nil {
		cfg.OutputDir = *cmd.OutputDir
	}
	if cmd.StrideAlign != nil {
		cfg.StrideAlign = *cmd.StrideAlign
	}
	if cmd.Summary != nil {
		cfg.Summary = *cmd.Summary
	}
	if cmd.Debug {
		cfg.Debug = true
	}
	if cmd.DebugDir != nil {
		cfg.DebugDir = *cmd.DebugDir
	}
	if cmd.LogLevel != nil {
		cfg.LogLevel = *cmd.LogLevel
	}
	if cmd.Quiet {
		cfg.Quiet = true
	}

	return cfg, cfg.Validate()
}

func writeSummary(cfg config.Config, fs ports.FileSystem, result orchestrator.RunResult) error {
	failed := make([]string, 0, len(result.Failures))
	for _, f := range result.Failures {
		failed = append(failed, f.Name)
	}

	summary := summarizer.NewBuilder().
		WithInput(summarizer.InputInfo{
			Path:         result.InputPath,
			Width:        result.Width,
			Height:       result.Height,
			Components:   result.Components,
			Progressive:  result.Progressive,
			MultiPicture: result.MultiPicture,
		}).
		WithSettings(summarizer.Settings{
			OutputDir:   result.OutputDir,
			StrideAlign: cfg.StrideAlign,
			FrameCount:  result.FrameCount,
			Encoder:     "MPFF (RGB24)",
		}).
		WithOutput(summarizer.OutputInfo{
			Radius:       result.Radius,
			Stride:       result.Stride,
			Written:      result.Written,
			Skipped:      result.Skipped,
			FailedFrames: failed,
			TotalBytes:   result.Bytes,
		}).
		Build()

	writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(summarizer.WithVersion(version)), fs)
	return writer.Write(cfg.Summary, summary)
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("bouncer version %s", version))
	return nil
}
