// Package render draws prize wheels onto a gg drawing context.
//
// The wheel core computes geometry only; this package turns a
// [wheel.Wheel]'s slice layout into filled wedges, labels and a pointer
// marker. It holds no state of its own: call Draw once per frame after
// advancing the wheel.
package render

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/wheel"
)

// Style controls how a wheel is drawn. The zero value is not useful;
// start from DefaultStyle.
type Style struct {
	// BackgroundColors is the palette cycled across slices whose item
	// has no BackgroundColor of its own.
	BackgroundColors []string

	// LineColor and LineWidth stroke the slice borders. A zero width
	// disables borders.
	LineColor string
	LineWidth float64

	// LabelColor is used for items without a LabelColor of their own.
	LabelColor string

	// LabelRadius places labels along the slice centerline, as a
	// fraction of the wheel radius.
	LabelRadius float64

	// Face is the font face for labels. Nil skips label drawing.
	Face text.Face

	// PointerColor fills the pointer marker. Empty skips the marker.
	PointerColor string
}

// DefaultStyle returns a style with an alternating two-color palette,
// thin white borders and no font face.
func DefaultStyle() Style {
	return Style{
		BackgroundColors: []string{"#2a9d8f", "#e9c46a", "#e76f51", "#264653"},
		LineColor:        "#ffffff",
		LineWidth:        1,
		LabelColor:       "#000000",
		LabelRadius:      0.65,
		PointerColor:     "#c0392b",
	}
}

// rad converts wheel degrees (0 north, clockwise) to the drawing
// context's radians (0 east, y down).
func rad(deg float64) float64 {
	return (deg - 90) * math.Pi / 180
}

// Draw renders the wheel onto dc as a disk of the given radius centered
// at (cx, cy): one filled wedge per slice, optional borders and labels,
// and the pointer marker at the wheel's pointer angle.
func Draw(dc *gg.Context, w *wheel.Wheel, cx, cy, radius float64, style Style) error {
	items := w.Items()
	for i, r := range w.Slices() {
		bg := items[i].BackgroundColor
		if bg == "" && len(style.BackgroundColors) > 0 {
			bg = style.BackgroundColors[i%len(style.BackgroundColors)]
		}
		if err := fillWedge(dc, cx, cy, radius, r, bg); err != nil {
			return err
		}
	}

	if style.LineWidth > 0 && style.LineColor != "" {
		if err := strokeBorders(dc, w, cx, cy, radius, style); err != nil {
			return err
		}
	}

	if style.Face != nil {
		drawLabels(dc, w, cx, cy, radius, style)
	}

	if style.PointerColor != "" {
		if err := drawPointer(dc, w.PointerAngle(), cx, cy, radius, style.PointerColor); err != nil {
			return err
		}
	}
	return nil
}

// fillWedge fills the pie wedge for one slice range.
func fillWedge(dc *gg.Context, cx, cy, radius float64, r wheel.SliceRange, hexColor string) error {
	a1, a2 := rad(r.Start), rad(r.End)

	dc.ClearPath()
	dc.MoveTo(cx, cy)
	dc.LineTo(cx+radius*math.Cos(a1), cy+radius*math.Sin(a1))
	// DrawArc continues from the current point, which now sits on the
	// arc's start, so the curve segments chain cleanly.
	dc.DrawArc(cx, cy, radius, a1, a2)
	dc.ClosePath()

	if hexColor != "" {
		dc.SetHexColor(hexColor)
	} else {
		dc.SetRGB(0.8, 0.8, 0.8)
	}
	return dc.Fill()
}

// strokeBorders draws the radial border of each slice plus the rim.
func strokeBorders(dc *gg.Context, w *wheel.Wheel, cx, cy, radius float64, style Style) error {
	dc.SetHexColor(style.LineColor)
	dc.SetLineWidth(style.LineWidth)

	for _, r := range w.Slices() {
		a := rad(r.Start)
		dc.ClearPath()
		dc.MoveTo(cx, cy)
		dc.LineTo(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	dc.ClearPath()
	dc.DrawCircle(cx, cy, radius)
	return dc.Stroke()
}

// drawLabels writes each item label along its slice centerline.
func drawLabels(dc *gg.Context, w *wheel.Wheel, cx, cy, radius float64, style Style) {
	dc.SetFont(style.Face)
	items := w.Items()
	for i, r := range w.Slices() {
		label := items[i].Label
		if label == "" {
			continue
		}
		color := items[i].LabelColor
		if color == "" {
			color = style.LabelColor
		}
		dc.SetHexColor(color)

		a := rad(r.Center())
		x := cx + radius*style.LabelRadius*math.Cos(a)
		y := cy + radius*style.LabelRadius*math.Sin(a)
		dc.DrawStringAnchored(label, x, y, 0.5, 0.5)
	}
}

// drawPointer fills a small triangle straddling the rim at the pointer
// angle, tip inward.
func drawPointer(dc *gg.Context, pointerAngle, cx, cy, radius float64, hexColor string) error {
	a := rad(pointerAngle)
	tip := gg.Pt(cx+radius*0.88*math.Cos(a), cy+radius*0.88*math.Sin(a))
	left := gg.Pt(cx+radius*1.04*math.Cos(a-0.06), cy+radius*1.04*math.Sin(a-0.06))
	right := gg.Pt(cx+radius*1.04*math.Cos(a+0.06), cy+radius*1.04*math.Sin(a+0.06))

	dc.ClearPath()
	dc.MoveTo(tip.X, tip.Y)
	dc.LineTo(left.X, left.Y)
	dc.LineTo(right.X, right.Y)
	dc.ClosePath()
	dc.SetHexColor(hexColor)
	return dc.Fill()
}
