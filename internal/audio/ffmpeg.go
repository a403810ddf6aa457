// Package audio builds the per-deck listening track: synthesized speech and
// silence segments assembled in a fixed pattern and merged with ffmpeg.
package audio

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/thaivocab/thaivocab/internal/logger"
)

const silenceSampleRate = 16000

// SilenceGenerator produces a silent audio buffer of the given duration.
type SilenceGenerator interface {
	Silence(ctx context.Context, d time.Duration) ([]byte, error)
}

// Concatenator merges ordered audio buffers into one playable stream.
type Concatenator interface {
	Concatenate(ctx context.Context, segments [][]byte) ([]byte, error)
}

// FFmpeg drives the external ffmpeg binary for both silence generation and
// the lossless concat merge.
type FFmpeg struct {
	path string
	log  *logger.Logger
}

func NewFFmpeg(path string) *FFmpeg {
	if path == "" {
		path = "ffmpeg"
	}
	return &FFmpeg{
		path: path,
		log:  logger.Default().WithPrefix("ffmpeg"),
	}
}

// Silence renders d of mono silence as MP3 bytes.
func (f *FFmpeg) Silence(ctx context.Context, d time.Duration) ([]byte, error) {
	cmd := exec.CommandContext(ctx, f.path,
		"-f", "lavfi",
		"-i", fmt.Sprintf("anullsrc=r=%d:cl=mono", silenceSampleRate),
		"-t", fmt.Sprintf("%.3f", d.Seconds()),
		"-q:a", "9",
		"-f", "mp3",
		"-",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		f.log.Error("silence generation failed: %v: %s", err, stderr.String())
		return nil, fmt.Errorf("ffmpeg silence: %w", err)
	}
	return stdout.Bytes(), nil
}

// Concatenate merges the non-empty segments with a stream copy (no
// re-encoding). An all-empty input returns an empty buffer without invoking
// ffmpeg. The scratch directory is removed on every exit path.
func (f *FFmpeg) Concatenate(ctx context.Context, segments [][]byte) ([]byte, error) {
	var parts [][]byte
	for _, seg := range segments {
		if len(seg) > 0 {
			parts = append(parts, seg)
		}
	}
	if len(parts) == 0 {
		return nil, nil
	}

	tmpDir, err := os.MkdirTemp("", "thaivocab-concat-")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	var manifest bytes.Buffer
	for i, part := range parts {
		partPath := filepath.Join(tmpDir, fmt.Sprintf("part_%04d.mp3", i))
		if err := os.WriteFile(partPath, part, 0o600); err != nil {
			return nil, fmt.Errorf("write segment %d: %w", i, err)
		}
		fmt.Fprintf(&manifest, "file '%s'\n", partPath)
	}

	manifestPath := filepath.Join(tmpDir, "files.txt")
	if err := os.WriteFile(manifestPath, manifest.Bytes(), 0o600); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	outPath := filepath.Join(tmpDir, "output.mp3")
	cmd := exec.CommandContext(ctx, f.path,
		"-f", "concat",
		"-safe", "0",
		"-i", manifestPath,
		"-c", "copy",
		outPath,
	)

	start := time.Now()
	if out, err := cmd.CombinedOutput(); err != nil {
		f.log.Error("concat failed: %v: %s", err, string(out))
		return nil, fmt.Errorf("ffmpeg concat: %w", err)
	}

	merged, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("read merged output: %w", err)
	}

	f.log.Debug("merged %d segments into %d bytes in %v", len(parts), len(merged), time.Since(start))
	return merged, nil
}
