//go:build ignore

// gen_track_art.go – run with:
//
//	go run scripts/gen_track_art.go
//
// Writes assets/ui/barrier_9slice.png, the placeholder track barrier. The
// border is a red and white kerb; the centre stays transparent so the
// asphalt shows through. The slice size lives in internal/gui/theme/textures.go.
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

const (
	size   = 64
	slice  = 16
	stripe = 8
)

func main() {
	if err := os.MkdirAll(filepath.Join("assets", "ui"), 0o755); err != nil {
		log.Fatal(err)
	}

	red := color.RGBA{0xD8, 0x2A, 0x2A, 0xFF}
	white := color.RGBA{0xF2, 0xF2, 0xF2, 0xFF}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x >= slice && y >= slice && x < size-slice && y < size-slice {
				continue
			}
			if ((x+y)/stripe)%2 == 0 {
				img.SetRGBA(x, y, red)
			} else {
				img.SetRGBA(x, y, white)
			}
		}
	}

	path := filepath.Join("assets", "ui", "barrier_9slice.png")
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("wrote %s (%dx%d slice=%d)", path, size, size, slice)
}
