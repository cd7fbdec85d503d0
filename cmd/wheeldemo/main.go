// Command wheeldemo renders a wheel spin as a sequence of PNG frames.
//
// Frames advance on synthetic timestamps, so the output is
// deterministic for a given seedless configuration regardless of how
// fast the renderer runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/wheel"
	"github.com/gogpu/wheel/render"
)

func main() {
	var (
		configPath = flag.String("config", "", "wheel YAML description (uses a built-in demo wheel if empty)")
		size       = flag.Int("size", 512, "image size in pixels")
		frames     = flag.Int("frames", 120, "maximum number of frames to render")
		step       = flag.Duration("step", 16*time.Millisecond, "simulated time per frame")
		speed      = flag.Float64("speed", 250, "initial spin speed in degrees per second")
		out        = flag.String("out", "frame-%03d.png", "output filename pattern")
	)
	flag.Parse()

	w, err := buildWheel(*configPath)
	if err != nil {
		log.Fatalf("Failed to build wheel: %v", err)
	}
	if err := w.Spin(*speed); err != nil {
		log.Fatalf("Failed to spin: %v", err)
	}

	dc := gg.NewContext(*size, *size)
	style := render.DefaultStyle()
	center := float64(*size) / 2
	radius := center * 0.9

	now := time.Now()
	rendered := 0
	for i := 0; i < *frames; i++ {
		active := w.Advance(now)
		now = now.Add(*step)

		dc.ClearWithColor(gg.RGB(1, 1, 1))
		if err := render.Draw(dc, w, center, center, radius, style); err != nil {
			log.Fatalf("Failed to render frame %d: %v", i, err)
		}
		name := fmt.Sprintf(*out, i)
		if err := dc.SavePNG(name); err != nil {
			log.Fatalf("Failed to save %s: %v", name, err)
		}
		rendered++
		if !active {
			break
		}
	}

	log.Printf("Rendered %d frames, wheel at rest on index %d (rotation %.2f)",
		rendered, w.CurrentIndex(), w.Rotation())
}

func buildWheel(configPath string) (*wheel.Wheel, error) {
	if configPath != "" {
		cfg, err := wheel.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		return cfg.Wheel()
	}
	return wheel.New(wheel.WithItems([]wheel.Item{
		{Label: "Gold", Weight: 1, BackgroundColor: "#e9c46a"},
		{Label: "Silver", Weight: 2, BackgroundColor: "#cccccc"},
		{Label: "Bronze", Weight: 3, BackgroundColor: "#e76f51"},
		{Label: "Nothing", Weight: 6, BackgroundColor: "#264653"},
	}))
}
