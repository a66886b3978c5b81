// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen2d

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/maruel/ansi256"
)

func TestDraw(t *testing.T) {
	var buf bytes.Buffer
	d := NewWriter(&buf, &Opts{X: 2, Y: 2})
	if got := d.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", got)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	red := color.NRGBA{R: 0xFF, A: 0xFF}
	blue := color.NRGBA{B: 0xFF, A: 0xFF}
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 1, blue)
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		t.Fatal(err)
	}
	black := ansi256.Default.Block(color.NRGBA{A: 0xFF})
	rows := strings.Split(buf.String(), "\n")
	if len(rows) != 2 {
		t.Fatalf("%d rows; want 2: %q", len(rows), buf.String())
	}
	want0 := "\r\033[0m" + ansi256.Default.Block(red) + black + "\033[0m "
	want1 := "\r\033[0m" + black + ansi256.Default.Block(blue) + "\033[0m "
	if rows[0] != want0 {
		t.Errorf("row 0 = %q; want %q", rows[0], want0)
	}
	if rows[1] != want1 {
		t.Errorf("row 1 = %q; want %q", rows[1], want1)
	}

	// The next frame overwrites the previous one.
	buf.Reset()
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "\033[1A\r") {
		t.Errorf("second frame = %q", buf.String())
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	d := NewWriter(&buf, &Opts{X: 3})
	if _, err := d.Write([]byte{1}); err == nil {
		t.Error("expected error")
	}
	n, err := d.Write([]byte{0xFF, 0, 0, 0, 0xFF, 0, 0, 0, 0xFF})
	if err != nil {
		t.Fatal(err)
	}
	if n != 9 {
		t.Errorf("Write() = %d", n)
	}
	if strings.Contains(buf.String(), "\n") {
		t.Errorf("single row output has a newline: %q", buf.String())
	}
	if s := d.String(); s != "Screen2D{3x1}" {
		t.Errorf("String() = %q", s)
	}
}

func TestHalt(t *testing.T) {
	var buf bytes.Buffer
	d := NewWriter(&buf, &Opts{X: 1})
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\033[0m\n" {
		t.Errorf("Halt() wrote %q", buf.String())
	}
}
