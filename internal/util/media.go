package util

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// VideoMeta is what the resource service keeps from an ffprobe run.
type VideoMeta struct {
	DurationSeconds int
	Width           int
	Height          int
	SizeBytes       int64
}

type ffprobeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
		Size     string `json:"size"`
	} `json:"format"`
}

// ReadVideoMeta reads duration and dimensions with ffprobe.
func ReadVideoMeta(path string) (*VideoMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("video file missing: %w", err)
	}

	raw, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("read video metadata: %w", err)
	}
	return parseFFprobe(raw, info.Size())
}

func parseFFprobe(raw string, fallbackSize int64) (*VideoMeta, error) {
	var out ffprobeOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode ffprobe output: %w", err)
	}

	meta := &VideoMeta{SizeBytes: fallbackSize}
	for _, s := range out.Streams {
		if s.CodecType == "video" {
			meta.Width, meta.Height = s.Width, s.Height
			break
		}
	}
	if d, err := strconv.ParseFloat(out.Format.Duration, 64); err == nil {
		meta.DurationSeconds = int(math.Round(d))
	}
	if size, err := strconv.ParseInt(out.Format.Size, 10, 64); err == nil {
		meta.SizeBytes = size
	}
	return meta, nil
}

// ExtractThumbnail writes a single JPEG frame taken at offset (e.g. "00:00:01").
func ExtractThumbnail(videoPath, thumbPath, offset string) error {
	if err := os.MkdirAll(filepath.Dir(thumbPath), 0755); err != nil {
		return fmt.Errorf("create thumbnail dir: %w", err)
	}
	return ffmpeg.Input(videoPath, ffmpeg.KwArgs{"ss": offset}).
		Output(thumbPath, ffmpeg.KwArgs{"vframes": "1", "q:v": "2"}).
		OverWriteOutput().
		Run()
}
