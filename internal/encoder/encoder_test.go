package encoder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/sheetgen-cli/internal/layout"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

// noise is photographic-like content: every pixel independent.
func noise(w, h int, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rng.Read(img.Pix)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

func distinctColors(img image.Image) int {
	seen := map[[3]uint32]bool{}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			seen[[3]uint32{r, g, bl}] = true
		}
	}
	return len(seen)
}

func TestQuantize_RespectsBound(t *testing.T) {
	src := gradient(64, 48)
	if distinctColors(src) <= 16 {
		t.Fatal("fixture too simple")
	}
	for _, n := range []int{2, 16, 64, 255} {
		q := Quantize(src, n)
		if got := distinctColors(q); got > n {
			t.Errorf("Quantize(%d): %d colors", n, got)
		}
		if q.Bounds() != src.Bounds() {
			t.Errorf("Quantize(%d) bounds = %v", n, q.Bounds())
		}
	}
}

func TestQuantize_FullColorUntouched(t *testing.T) {
	src := gradient(8, 8)
	if got := Quantize(src, 256); got != image.Image(src) {
		t.Error("256 colors should return the input image")
	}
}

func TestEncodeSheet_PNGPaletteBound(t *testing.T) {
	r := NewRegistry()
	data, enc, err := r.EncodeSheet(gradient(64, 48), Settings{Quality: 90, Colors: 16, Format: "png"})
	if err != nil {
		t.Fatalf("EncodeSheet: %v", err)
	}
	if enc.Extension() != "png" {
		t.Errorf("extension = %q", enc.Extension())
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := distinctColors(img); got > 16 {
		t.Errorf("decoded sheet has %d colors, want <= 16", got)
	}
}

func TestEncodeSheet_FewerColorsSmallerOnNoisyContent(t *testing.T) {
	r := NewRegistry()
	src := noise(64, 64, 1)
	sizes := map[int]int{}
	for _, colors := range []int{16, 256} {
		data, _, err := r.EncodeSheet(src, Settings{Quality: 85, Colors: colors, Format: "png"})
		if err != nil {
			t.Fatalf("EncodeSheet colors=%d: %v", colors, err)
		}
		sizes[colors] = len(data)
	}
	if sizes[16] > sizes[256] {
		t.Errorf("colors=16: %d bytes, colors=256: %d bytes", sizes[16], sizes[256])
	}
}

func TestEncodeSheet_JPEG(t *testing.T) {
	r := NewRegistry()
	src := gradient(96, 64)

	hi, enc, err := r.EncodeSheet(src, Settings{Quality: 95, Colors: 256, Format: "jpg"})
	if err != nil {
		t.Fatalf("EncodeSheet q95: %v", err)
	}
	if enc.Format() != "jpeg" || enc.Extension() != "jpg" {
		t.Errorf("encoder = %s/%s", enc.Format(), enc.Extension())
	}
	lo, _, err := r.EncodeSheet(src, Settings{Quality: 10, Colors: 256, Format: "jpeg"})
	if err != nil {
		t.Fatalf("EncodeSheet q10: %v", err)
	}
	if len(lo) >= len(hi) {
		t.Errorf("q10 = %d bytes, q95 = %d bytes", len(lo), len(hi))
	}

	img, err := jpeg.Decode(bytes.NewReader(hi))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Size() != src.Bounds().Size() {
		t.Errorf("decoded size = %v", img.Bounds().Size())
	}
}

func TestEncodeSheet_RejectsBadSettings(t *testing.T) {
	r := NewRegistry()
	_, _, err := r.EncodeSheet(gradient(4, 4), Settings{Quality: 0, Colors: 256, Format: "jpeg"})
	var inv *InvalidSettingError
	if !errors.As(err, &inv) || inv.Field != "quality" {
		t.Errorf("err = %v, want quality InvalidSettingError", err)
	}
	if _, _, err := r.EncodeSheet(gradient(4, 4), Settings{Quality: 50, Colors: 256, Format: "bmp"}); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		s     Settings
		field string
	}{
		{Settings{Quality: 1, Colors: 2}, ""},
		{Settings{Quality: 100, Colors: 256}, ""},
		{Settings{Quality: 101, Colors: 256}, "quality"},
		{Settings{Quality: 85, Colors: 1}, "colors"},
		{Settings{Quality: 85, Colors: 257}, "colors"},
	}
	for _, tc := range cases {
		err := tc.s.Validate()
		if tc.field == "" {
			if err != nil {
				t.Errorf("%+v: unexpected %v", tc.s, err)
			}
			continue
		}
		var inv *InvalidSettingError
		if !errors.As(err, &inv) || inv.Field != tc.field {
			t.Errorf("%+v: err = %v, want %s error", tc.s, err, tc.field)
		}
	}
}

func TestOutputPath(t *testing.T) {
	grid := layout.Grid{Rows: 2, Cols: 4}
	in := filepath.Join("clips", "walk.cycle.gif")

	if got, want := OutputPath(in, grid, "jpg", ""), filepath.Join("clips", "walk.cycle_sprite_2x4.jpg"); got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
	if got, want := OutputPath(in, grid, "png", "out"), filepath.Join("out", "walk.cycle_sprite_2x4.png"); got != want {
		t.Errorf("OutputPath with dir = %q, want %q", got, want)
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.jpg")
	if err := os.WriteFile(path, []byte("old contents"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("new")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("contents = %q", got)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("leftover files: %d entries", len(entries))
	}
}

func TestWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "sheet.jpg")
	err := WriteFile(path, []byte("data"))
	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("err = %v, want EncodeError", err)
	}
	if ee.Path != path {
		t.Errorf("path = %q", ee.Path)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("destination exists after failure: %v", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	for _, f := range []string{"jpeg", "JPG", "png"} {
		if r.Get(f) == nil {
			t.Errorf("Get(%q) = nil", f)
		}
	}
	if _, err := r.Lookup("tga"); err == nil {
		t.Error("Lookup(tga) should fail")
	}
	avail := r.Available()
	if len(avail) < 2 || avail[0] != "jpeg" {
		t.Errorf("Available() = %v", avail)
	}
}

func TestWebPEncoder(t *testing.T) {
	enc := &WebPEncoder{}
	if !enc.Available() {
		t.Skip("cwebp not installed")
	}
	data, err := enc.Encode(gradient(32, 32), 80)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Errorf("not a WebP file: % x", data[:min(12, len(data))])
	}
}
