package assets

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func tgaHeader(imageType byte, width, height int, bpp, descriptor byte) []byte {
	h := make([]byte, 18)
	h[2] = imageType
	h[12], h[13] = byte(width), byte(width>>8)
	h[14], h[15] = byte(height), byte(height>>8)
	h[16] = bpp
	h[17] = descriptor
	return h
}

func TestDecodeTGAGrayBottomUp(t *testing.T) {
	// Rows are stored bottom-up: 10 20 is the last row.
	data := append(tgaHeader(tgaGray, 2, 2, 8, 0), 10, 20, 30, 40)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA() error = %v", err)
	}

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 1, 10}, {1, 1, 20}, {0, 0, 30}, {1, 0, 40},
	}
	for _, tt := range tests {
		if got := img.At(tt.x, tt.y).(color.Gray).Y; got != tt.want {
			t.Errorf("At(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecodeTGARLEColor(t *testing.T) {
	data := tgaHeader(tgaTrueColorRLE, 3, 1, 24, 0x20)
	// Run of two blue pixels, then one raw red pixel. Pixels are BGR.
	data = append(data, 0x81, 255, 0, 0)
	data = append(data, 0x00, 0, 0, 255)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA() error = %v", err)
	}

	blue := color.NRGBA{B: 255, A: 255}
	red := color.NRGBA{R: 255, A: 255}
	for x, want := range []color.NRGBA{blue, blue, red} {
		if got := img.At(x, 0).(color.NRGBA); got != want {
			t.Errorf("At(%d,0) = %v, want %v", x, got, want)
		}
	}
}

func TestDecodeTGARLEGray(t *testing.T) {
	data := append(tgaHeader(tgaGrayRLE, 4, 1, 8, 0x20), 0x83, 99)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA() error = %v", err)
	}
	for x := range 4 {
		if got := img.At(x, 0).(color.Gray).Y; got != 99 {
			t.Errorf("At(%d,0) = %d, want 99", x, got)
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	colorMapped := tgaHeader(1, 1, 1, 8, 0)
	colorMapped[1] = 1

	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"color mapped", colorMapped},
		{"unsupported type", tgaHeader(9, 1, 1, 8, 0)},
		{"gray depth", tgaHeader(tgaGray, 1, 1, 16, 0)},
		{"color depth", tgaHeader(tgaTrueColor, 1, 1, 8, 0)},
		{"truncated", append(tgaHeader(tgaGray, 2, 2, 8, 0), 1, 2, 3)},
		{"truncated run", tgaHeader(tgaGrayRLE, 2, 1, 8, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := DecodeTGA(append(tgaHeader(tgaGray, 2, 2, 8, 0), 1)); !errors.Is(err, errTGATruncated) {
		t.Errorf("error = %v, want errTGATruncated", err)
	}
}

func TestDecodeFileTGA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "height.TGA")
	data := append(tgaHeader(tgaGray, 1, 1, 8, 0), 180)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	r, _, _, _ := img.At(0, 0).RGBA()
	if r>>8 != 180 {
		t.Errorf("pixel = %d, want 180", r>>8)
	}
}
