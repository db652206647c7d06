package frames

import (
	"path/filepath"
	"strings"
)

// Kind is the container family a source is decoded as.
type Kind string

const (
	KindGIF   Kind = "gif"   // Multi-frame GIF, every frame index decoded.
	KindWebP  Kind = "webp"  // Still or animated WebP, every frame decoded.
	KindStill Kind = "still" // Single image decoded through the image registry.
	KindVideo Kind = "video" // Anything else, streamed through ffmpeg.
)

// stillExtensions lists extensions handled without ffmpeg.
var stillExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// KindOf classifies a source by its file extension.
func KindOf(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".gif":
		return KindGIF
	case ext == ".webp":
		return KindWebP
	case stillExtensions[ext]:
		return KindStill
	default:
		return KindVideo
	}
}
