package orchestrator

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/bouncer/pkg/adapters/filesink"
	"github.com/user/bouncer/pkg/adapters/ggrenderer"
	"github.com/user/bouncer/pkg/adapters/jpegdecoder"
	"github.com/user/bouncer/pkg/adapters/logger"
	"github.com/user/bouncer/pkg/adapters/mpffencoder"
	"github.com/user/bouncer/pkg/adapters/osfilesystem"
	"github.com/user/bouncer/pkg/motion"
	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/stages/convert"
	"github.com/user/bouncer/pkg/stages/decode"
	"github.com/user/bouncer/pkg/stages/probe"
	"github.com/user/bouncer/pkg/stages/sequence"
	"github.com/user/bouncer/pkg/stages/trajectory"
)

func writeTestJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

// TestPipeline_EndToEnd runs every stage with the real adapters.
func TestPipeline_EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end pipeline in short mode")
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "solid.jpg")
	outDir := filepath.Join(dir, "frames")
	debugDir := filepath.Join(dir, "debug")
	writeTestJPEG(t, input, 48, 60)

	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	log := logger.NewNoop()

	orch := New(
		probe.NewStage(fs, log),
		decode.NewStage(jpegdecoder.New(), log),
		convert.NewStage(log),
		trajectory.NewStage(renderer, log),
		sequence.NewStage(mpffencoder.New(), fs, log),
		fs,
		filesink.New(debugDir, fs, renderer),
		log,
	)

	config := DefaultConfig()
	config.InputPath = input
	config.OutputDir = outDir
	config.StrideAlign = 16

	result, err := orch.Run(context.Background(), config)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	if result.Written != pipeline.DefaultFrameCount {
		t.Fatalf("expected %d frames, got %d", pipeline.DefaultFrameCount, result.Written)
	}
	if result.Stride != 144 {
		t.Errorf("expected stride 144, got %d", result.Stride)
	}

	centers := motion.Trajectory(60, pipeline.DefaultFrameCount)
	for _, i := range []int{0, 1, 9, 10, 99, 100, 299} {
		path := filepath.Join(outDir, sequence.FrameName(i, mpffencoder.Extension))
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		frame, err := mpffencoder.Decode(data)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if r, g, b := frame.At(24, centers[i]); r != 255 || g != 255 || b != 255 {
			t.Errorf("frame %d: expected white center at y=%d, got (%d,%d,%d)", i, centers[i], r, g, b)
		}
		if r, _, b := frame.At(0, 0); r > 16 || b < 180 {
			t.Errorf("frame %d: expected blue background at corner, got r=%d b=%d", i, r, b)
		}
	}

	for _, name := range []string{"probe.json", "motion.json", "base.png", "trajectory.png"} {
		if _, err := os.Stat(filepath.Join(debugDir, name)); err != nil {
			t.Errorf("expected debug output %s: %v", name, err)
		}
	}
}
