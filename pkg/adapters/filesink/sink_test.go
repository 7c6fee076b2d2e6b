package filesink

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/user/bouncer/pkg/mocks"
	"github.com/user/bouncer/pkg/ports"
)

var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.Renderer{})

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveJSON(t *testing.T) {
	tests := []struct {
		name string
		save func(*Sink, []byte) error
		file string
	}{
		{"probe", (*Sink).SaveProbeJSON, "probe.json"},
		{"motion", (*Sink).SaveMotionJSON, "motion.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewFileSystem()
			sink := New(testBaseDir, fs, &mocks.Renderer{})

			data := []byte(`{"width": 640}`)
			if err := tt.save(sink, data); err != nil {
				t.Fatalf("save failed: %v", err)
			}

			saved, ok := fs.GetFile(filepath.Join(testBaseDir, tt.file))
			if !ok {
				t.Fatalf("expected %s to be saved", tt.file)
			}
			if string(saved) != string(data) {
				t.Errorf("expected %q, got %q", data, saved)
			}
		})
	}
}

func TestSink_SaveImagesAsPNG(t *testing.T) {
	fs := mocks.NewFileSystem()
	var formats []ports.ImageFormat
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			formats = append(formats, format)
			return []byte("png"), nil
		},
	}
	sink := New(testBaseDir, fs, renderer)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	if err := sink.SaveBaseFrame(img); err != nil {
		t.Fatalf("SaveBaseFrame failed: %v", err)
	}
	if err := sink.SaveTrajectory(img); err != nil {
		t.Fatalf("SaveTrajectory failed: %v", err)
	}

	for _, name := range []string{"base.png", "trajectory.png"} {
		if _, ok := fs.GetFile(filepath.Join(testBaseDir, name)); !ok {
			t.Errorf("expected %s to be saved", name)
		}
	}
	for _, f := range formats {
		if f != ports.FormatPNG {
			t.Errorf("expected PNG encoding, got %v", f)
		}
	}
}

func TestSink_SaveImageEncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, errors.New("encode failed")
		},
	}
	sink := New(testBaseDir, fs, renderer)

	if err := sink.SaveBaseFrame(image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error")
	}
	if len(fs.Paths()) != 0 {
		t.Error("expected nothing to be written")
	}
}

func TestSink_WithRealEncoding(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			var buf bytes.Buffer
			err := png.Encode(&buf, img)
			return buf.Bytes(), err
		},
	}
	sink := New(testBaseDir, fs, renderer)

	if err := sink.SaveTrajectory(image.NewRGBA(image.Rect(0, 0, 3, 3))); err != nil {
		t.Fatalf("SaveTrajectory failed: %v", err)
	}
	data, _ := fs.GetFile(filepath.Join(testBaseDir, "trajectory.png"))
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("expected PNG signature")
	}
}
