package manifest

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/sheetgen-cli/internal/hasher"
)

// writeSheet writes a w×h PNG into dir and returns its name, size and hash.
func writeSheet(t *testing.T, dir string, w, h int) (string, int64, string) {
	t.Helper()
	name := "anim_sprite_2x3.png"
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	hash, err := hasher.FileHash(path, 16)
	if err != nil {
		t.Fatal(err)
	}
	return name, info.Size(), hash
}

func validIndex(t *testing.T, dir string) *Index {
	t.Helper()
	name, size, hash := writeSheet(t, dir, 30, 20)
	x := New()
	x.Source = Source{Path: "anim.gif", Kind: "gif", FrameCount: 5, FrameWidth: 10, FrameHeight: 10}
	x.Sheet = Sheet{Path: name, Format: "png", Rows: 2, Cols: 3, Width: 30, Height: 20, Size: size, Hash: hash}
	x.Settings = Settings{Profile: "default", Quality: 85, Colors: 256, Layout: "auto"}
	for i := 0; i < 5; i++ {
		row, col := i/3, i%3
		x.AddCell(i, image.Rect(col*10, row*10, (col+1)*10, (row+1)*10))
	}
	return x
}

func TestIndexRoundtrip(t *testing.T) {
	dir := t.TempDir()
	x := validIndex(t, dir)
	path := filepath.Join(dir, "index.json")
	if err := WriteJSON(x, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	y, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if y.Version != SupportedIndexVersion {
		t.Errorf("version: got %d", y.Version)
	}
	if y.Sheet.Rows != 2 || y.Sheet.Cols != 3 {
		t.Errorf("grid: got %dx%d", y.Sheet.Rows, y.Sheet.Cols)
	}
	if len(y.Cells) != 5 || y.Cells[4] != (Cell{Index: 4, X: 10, Y: 10, W: 10, H: 10}) {
		t.Errorf("cells: %+v", y.Cells)
	}
}

func TestReadJSON_IgnoresUnknownFields(t *testing.T) {
	raw := `{"version": 1, "future": true, "sheet": {"rows": 1, "cols": 1, "extra": 3}, "cells": []}`
	path := filepath.Join(t.TempDir(), "i.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	x, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if x.Sheet.Rows != 1 {
		t.Errorf("rows: got %d", x.Sheet.Rows)
	}
}

func TestValidate_Clean(t *testing.T) {
	dir := t.TempDir()
	if errs := Validate(validIndex(t, dir), dir); len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestValidate_Problems(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(x *Index, dir string)
		want   string
	}{
		{"version", func(x *Index, _ string) { x.Version = 9 }, "unsupported index version"},
		{"too small", func(x *Index, _ string) { x.Source.FrameCount = 7 }, "cannot hold 7 frames"},
		{"cell outside", func(x *Index, _ string) { x.Cells[0].X = 25 }, "outside sheet"},
		{"missing cell", func(x *Index, _ string) { x.Cells = x.Cells[:4] }, "4 cells for 5 frames"},
		{"hash", func(x *Index, _ string) { x.Sheet.Hash = "0000000000000000" }, "hash mismatch"},
		{"missing file", func(x *Index, _ string) { x.Sheet.Path = "gone.png" }, "not found"},
		{"tampered", func(x *Index, dir string) {
			f, _ := os.OpenFile(filepath.Join(dir, x.Sheet.Path), os.O_APPEND|os.O_WRONLY, 0)
			f.Write([]byte("junk"))
			f.Close()
		}, "size mismatch"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			x := validIndex(t, dir)
			tc.mutate(x, dir)
			errs := Validate(x, dir)
			found := false
			for _, e := range errs {
				if strings.Contains(e, tc.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("want error containing %q, got %v", tc.want, errs)
			}
		})
	}
}

func TestPathFor(t *testing.T) {
	if got := PathFor("a/b_sprite_2x3.jpg"); got != "a/b_sprite_2x3.jpg.json" {
		t.Errorf("PathFor = %q", got)
	}
}
