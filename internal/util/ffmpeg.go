package util

import (
	"encoding/json"
	"os"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// VideoInfo holds probed metadata of a stored video file.
type VideoInfo struct {
	Duration float64 `json:"duration"` // seconds
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Size     int64   `json:"size"`
}

// ProbeVideo inspects a video file with ffprobe. Returns an error when the
// file is missing or ffmpeg is unavailable; callers treat the metadata as
// best-effort.
func ProbeVideo(videoPath string) (*VideoInfo, error) {
	fileInfo, err := os.Stat(videoPath)
	if err != nil {
		return nil, err
	}

	jsonOutput, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return nil, err
	}

	var result struct {
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

	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, err
	}

	var width, height int
	for _, stream := range result.Streams {
		if stream.CodecType == "video" {
			width = stream.Width
			height = stream.Height
			break
		}
	}

	duration, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		duration = 0
	}

	size, err := strconv.ParseInt(result.Format.Size, 10, 64)
	if err != nil {
		size = fileInfo.Size()
	}

	return &VideoInfo{
		Duration: duration,
		Width:    width,
		Height:   height,
		Size:     size,
	}, nil
}
