package frames

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// videoProbe holds the ffprobe fields needed to pick and size a stream.
type videoProbe struct {
	Streams []struct {
		Index       int    `json:"index"`
		CodecType   string `json:"codec_type"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		Disposition struct {
			AttachedPic int `json:"attached_pic"`
		} `json:"disposition"`
	} `json:"streams"`
}

// videoStream is the stream decoded and its stored (unrotated) geometry.
type videoStream struct {
	Index  int
	Width  int
	Height int
}

// probeStream picks the first real video stream in ffprobe's JSON output.
// Attached pictures (cover art) are video streams too and are skipped.
func probeStream(probeJSON string) (videoStream, error) {
	var p videoProbe
	if err := json.Unmarshal([]byte(probeJSON), &p); err != nil {
		return videoStream{}, fmt.Errorf("parse ffprobe output: %w", err)
	}
	for _, s := range p.Streams {
		if s.CodecType != "video" || s.Disposition.AttachedPic != 0 {
			continue
		}
		if s.Width > 0 && s.Height > 0 {
			return videoStream{Index: s.Index, Width: s.Width, Height: s.Height}, nil
		}
	}
	return videoStream{}, errors.New("no video stream found")
}

// decodeVideo streams every frame of a video through ffmpeg as packed
// rgb24 and reads them one frame-sized chunk at a time until end of stream.
//
// Output is pinned to the probed stream and autorotation is off, so every
// frame has exactly the probed width and height.
func decodeVideo(ctx context.Context, path string, seq *Sequence) error {
	probe, err := ffmpeg.Probe(path)
	if err != nil {
		return fmt.Errorf("ffprobe: %w", err)
	}
	vs, err := probeStream(probe)
	if err != nil {
		return err
	}
	w, h := vs.Width, vs.Height

	stream := ffmpeg.Input(path, ffmpeg.KwArgs{"noautorotate": ""}).
		Output("pipe:", ffmpeg.KwArgs{
			"map":      fmt.Sprintf("0:%d", vs.Index),
			"format":   "rawvideo",
			"pix_fmt":  "rgb24",
			"vsync":    "passthrough", // one output frame per decoded frame
			"loglevel": "error",
		})
	stream.Context = ctx
	cmd := stream.Compile()

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	// Reap the process on every path; Kill is a no-op error once it exited.
	waited := false
	defer func() {
		if !waited {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		}
	}()

	if err := readRawFrames(stdout, w, h, seq); err != nil {
		return err
	}

	waited = true
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// readRawFrames reads packed rgb24 frames of w×h from r until EOF.
func readRawFrames(r io.Reader, w, h int, seq *Sequence) error {
	buf := make([]byte, w*h*3)
	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			return nil
		}
		if err == io.ErrUnexpectedEOF {
			return fmt.Errorf("frame %d truncated", seq.Len())
		}
		if err != nil {
			return fmt.Errorf("read frame %d: %w", seq.Len(), err)
		}
		if err := seq.Add(rgb24ToNRGBA(buf, w, h)); err != nil {
			return err
		}
	}
}

func rgb24ToNRGBA(src []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, j := 0, 0; i+2 < len(src); i, j = i+3, j+4 {
		img.Pix[j] = src[i]
		img.Pix[j+1] = src[i+1]
		img.Pix[j+2] = src[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}
