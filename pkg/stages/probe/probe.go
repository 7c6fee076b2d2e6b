// Package probe implements the JPEG stream inspection stage.
package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	jseg "github.com/garyhouston/jpegsegs"

	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
)

var (
	// ErrExtension is returned for input paths without a JPEG extension.
	ErrExtension = errors.New("probe: input must end in .jpg or .jpeg")
	// ErrNoFrame is returned when no SOF segment precedes the first scan.
	ErrNoFrame = errors.New("probe: no frame header before first scan")
	// ErrBadFrame is returned for a truncated or zero-sized SOF segment.
	ErrBadFrame = errors.New("probe: invalid frame header")
)

// Extensions accepted for input files. Matching is case-sensitive.
var Extensions = []string{".jpg", ".jpeg", ".JPG", ".JPEG"}

// Stage reads a JPEG file and scans its segments up to the first SOS marker.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new probe stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("probe"),
	}
}

// Execute validates the path, loads the file and reports its stream info.
func (s *Stage) Execute(ctx context.Context, input pipeline.ProbeInput) (pipeline.ProbeResult, error) {
	result := pipeline.ProbeResult{Path: input.Path}

	if !HasJPEGExtension(input.Path) {
		return result, pipeline.ArgumentError("probe", fmt.Errorf("%w: %s", ErrExtension, input.Path))
	}

	exists, err := s.fs.Exists(input.Path)
	if err != nil {
		return result, pipeline.InputError("probe", fmt.Errorf("stat %s: %w", input.Path, err))
	}
	if !exists {
		return result, pipeline.InputError("probe", fmt.Errorf("%s: file not found", input.Path))
	}

	s.logger.Debug("Probing %s", input.Path)

	data, err := s.fs.ReadFile(input.Path)
	if err != nil {
		return result, pipeline.InputError("probe", fmt.Errorf("read %s: %w", input.Path, err))
	}

	info, err := Scan(data)
	if err != nil {
		return result, pipeline.InputError("probe", fmt.Errorf("%s: %w", input.Path, err))
	}

	info.Path = input.Path
	info.Data = data
	s.logger.Debug("Probed %dx%d image, %d components", info.Width, info.Height, info.Components)
	if info.MultiPicture {
		s.logger.Debug("Multi-picture JPEG, using the primary image only")
	}

	return info, nil
}

// HasJPEGExtension reports whether path ends in one of Extensions.
func HasJPEGExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Scan walks the segments of the primary image up to its first SOS marker.
func Scan(data []byte) (info pipeline.ProbeResult, err error) {
	// jpegsegs slices with the segment length field unchecked, so a
	// length below 2 panics instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed segment: %v", r)
		}
	}()

	scanner, err := jseg.NewScanner(bytes.NewReader(data))
	if err != nil {
		return info, err
	}

	info.Markers = []string{"SOI"}
	seenFrame := false
	for {
		marker, buf, err := scanner.Scan()
		if err != nil {
			return info, fmt.Errorf("scan segments: %w", err)
		}
		info.Markers = append(info.Markers, marker.Name())

		switch {
		case marker == jseg.SOS:
			if !seenFrame {
				return info, ErrNoFrame
			}
			return info, nil
		case marker == jseg.EOI:
			return info, ErrNoFrame
		case isSOF(marker):
			if seenFrame {
				continue
			}
			if err := parseFrame(&info, marker, buf); err != nil {
				return info, err
			}
			seenFrame = true
		case marker == jseg.APP0+2:
			if isMPF, _ := jseg.GetMPFHeader(buf); isMPF {
				info.MultiPicture = true
			}
		}
	}
}

// isSOF reports whether m is SOF0..SOF15 excluding DHT, JPG and DAC.
func isSOF(m jseg.Marker) bool {
	if m < jseg.SOF0 || m > jseg.SOF0+0xF {
		return false
	}
	return m != jseg.DHT && m != jseg.JPG && m != jseg.DAC
}

// parseFrame reads precision, dimensions and component count from a SOF segment.
func parseFrame(info *pipeline.ProbeResult, marker jseg.Marker, buf []byte) error {
	if len(buf) < 6 {
		return ErrBadFrame
	}
	info.Precision = int(buf[0])
	info.Height = int(buf[1])<<8 | int(buf[2])
	info.Width = int(buf[3])<<8 | int(buf[4])
	info.Components = int(buf[5])
	info.Progressive = marker == jseg.SOF0+2 || marker == jseg.SOF0+6 ||
		marker == jseg.SOF0+10 || marker == jseg.SOF0+14

	if info.Width == 0 || info.Height == 0 || info.Components == 0 {
		return fmt.Errorf("%w: %dx%d, %d components", ErrBadFrame, info.Width, info.Height, info.Components)
	}
	return nil
}
