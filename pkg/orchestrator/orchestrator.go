// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/user/bouncer/pkg/motion"
	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
)

// ErrAllFramesFailed is returned when no frame could be encoded and written.
var ErrAllFramesFailed = errors.New("orchestrator: every frame failed")

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	InputPath string

	// Output
	OutputDir   string
	StrideAlign int // row alignment of the base frame in bytes
	FrameCount  int // 0 means pipeline.DefaultFrameCount
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OutputDir:   ".",
		StrideAlign: 0,
		FrameCount:  pipeline.DefaultFrameCount,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	probeStage      pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult]
	decodeStage     pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	convertStage    pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult]
	trajectoryStage pipeline.Stage[pipeline.TrajectoryInput, pipeline.TrajectoryResult]
	sequenceStage   pipeline.Stage[pipeline.SequenceInput, pipeline.SequenceResult]
	fs              ports.FileSystem
	sink            ports.DebugSink
	logger          ports.Logger
}

// New creates a new Orchestrator.
func New(
	probeStage pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult],
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult],
	convertStage pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult],
	trajectoryStage pipeline.Stage[pipeline.TrajectoryInput, pipeline.TrajectoryResult],
	sequenceStage pipeline.Stage[pipeline.SequenceInput, pipeline.SequenceResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		probeStage:      probeStage,
		decodeStage:     decodeStage,
		convertStage:    convertStage,
		trajectoryStage: trajectoryStage,
		sequenceStage:   sequenceStage,
		fs:              fs,
		sink:            sink,
		logger:          logger,
	}
}

// Run executes the complete pipeline. Probe, decode and conversion failures
// abort before any frame is produced. Per-frame failures only abort the run
// when no frame at all could be written.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Starting pipeline")

	// 1. Probe
	probe, err := o.probeStage.Execute(ctx, pipeline.ProbeInput{Path: config.InputPath})
	if err != nil {
		o.logger.Error("Failed to probe input: %s", err.Error())
		return RunResult{}, fmt.Errorf("probe stage: %w", err)
	}

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(probe, "", "  "); err == nil {
			o.saveDebug(o.sink.SaveProbeJSON(data))
		}
	}

	// 2. Decode
	decoded, err := o.decodeStage.Execute(ctx, pipeline.DecodeInput{Probe: probe})
	if err != nil {
		o.logger.Error("Failed to decode input: %s", err.Error())
		return RunResult{}, fmt.Errorf("decode stage: %w", err)
	}

	// 3. Convert
	converted, err := o.convertStage.Execute(ctx, pipeline.ConvertInput{
		Image:       decoded.Image,
		StrideAlign: config.StrideAlign,
	})
	if err != nil {
		o.logger.Error("Failed to convert image: %s", err.Error())
		return RunResult{}, fmt.Errorf("convert stage: %w", err)
	}
	base := converted.Base

	frameCount := config.FrameCount
	if frameCount <= 0 {
		frameCount = pipeline.DefaultFrameCount
	}

	if o.sink.Enabled() {
		o.saveDebug(o.sink.SaveBaseFrame(base.ToImage()))
		o.savePlan(ctx, base.Width, base.Height, frameCount)
	}

	// 4. Output directory
	if config.OutputDir != "" {
		if err := o.fs.MkdirAll(config.OutputDir); err != nil {
			o.logger.Error("Failed to create output directory: %s", err.Error())
			return RunResult{}, pipeline.EncodeError("create output directory", err)
		}
	}

	// 5. Frame sequence
	seq, err := o.sequenceStage.Execute(ctx, pipeline.SequenceInput{
		Base:       base,
		FrameCount: frameCount,
		OutputDir:  config.OutputDir,
	})
	if err != nil {
		if ctx.Err() == nil {
			o.logger.Error("Failed to render frames: %s", err.Error())
		}
		return RunResult{}, fmt.Errorf("sequence stage: %w", err)
	}

	result := RunResult{
		InputPath:    probe.Path,
		Width:        base.Width,
		Height:       base.Height,
		Components:   probe.Components,
		Progressive:  probe.Progressive,
		MultiPicture: probe.MultiPicture,
		Stride:       base.Stride,
		Radius:       seq.Radius,
		OutputDir:    config.OutputDir,
		FrameCount:   frameCount,
		Written:      len(seq.Written),
		Bytes:        seq.Bytes,
		Skipped:      len(seq.Skipped),
		Failures:     seq.Failures,
	}

	if len(seq.Written) == 0 && len(seq.Failures) > 0 {
		o.logger.Error("Failed to render frames: %s", ErrAllFramesFailed.Error())
		return result, pipeline.EncodeError("sequence", fmt.Errorf("%w: %w", ErrAllFramesFailed, seq.Failures[0].Err))
	}

	o.logger.Info("Wrote %d of %d frames to %s", result.Written, frameCount, config.OutputDir)
	o.logger.Info("Pipeline completed successfully")

	return result, nil
}

// motionPlan is the debug view of the sphere motion.
type motionPlan struct {
	Width   int   `json:"width"`
	Height  int   `json:"height"`
	Radius  int   `json:"radius"`
	Step    int   `json:"step"`
	Top     int   `json:"top"`
	Bottom  int   `json:"bottom"`
	Centers []int `json:"centers"`
}

// savePlan writes motion.json and the trajectory chart. Failures are logged only.
func (o *Orchestrator) savePlan(ctx context.Context, width, height, frameCount int) {
	radius := motion.RadiusFor(height)
	bounds := motion.BoundsFor(height, radius)
	plan := motionPlan{
		Width:   width,
		Height:  height,
		Radius:  radius,
		Step:    motion.Step,
		Top:     bounds.Top,
		Bottom:  bounds.Bottom,
		Centers: motion.Trajectory(height, frameCount),
	}

	if data, err := json.MarshalIndent(plan, "", "  "); err == nil {
		o.saveDebug(o.sink.SaveMotionJSON(data))
	}

	chart, err := o.trajectoryStage.Execute(ctx, pipeline.TrajectoryInput{
		FrameWidth:  width,
		FrameHeight: height,
		Radius:      radius,
		Centers:     plan.Centers,
	})
	if err != nil {
		o.saveDebug(err)
		return
	}
	o.saveDebug(o.sink.SaveTrajectory(chart.Image))
}

func (o *Orchestrator) saveDebug(err error) {
	if err != nil {
		o.logger.Warn("Failed to write debug output: %s", err.Error())
	}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Input information
	InputPath    string
	Width        int
	Height       int
	Components   int
	Progressive  bool
	MultiPicture bool

	// Base frame
	Stride int
	Radius int

	// Output information
	OutputDir  string
	FrameCount int
	Written    int
	Bytes      int64
	Skipped    int
	Failures   []pipeline.FrameError
}
