// Package userbar renders small fixed-size banner images ("userbars").
//
// # Overview
//
// A userbar is built from a declarative [Options] record and composited in a
// fixed layer order onto a linear-light canvas:
//
//  1. vertical background gradient
//  2. diagonal stripes
//  3. background image
//  4. glare ellipse, when the text is drawn over it
//  5. bitmap text with a 1px outline
//  6. glare ellipse, otherwise
//  7. 1px border
//
// Layers whose option is nil are skipped. [Options.Layers] exposes the
// resulting list.
//
// # Quick Start
//
//	opts := userbar.DefaultOptions()
//	opts.Text = "Gopher since 2009"
//
//	f, _ := os.Create("bar.png")
//	defer f.Close()
//	if err := userbar.WritePNG(f, &opts); err != nil {
//	    log.Fatal(err)
//	}
//
// # Color
//
// Inputs are 8-bit sRGB. Blending happens in linear light with
// non-premultiplied alpha, and the result is encoded back to sRGB by
// truncation. The background gradient alone interpolates in sRGB space.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Text and background images are positioned with [Placement], a pair of
// [AxisPlacement] values (auto, center, start+N, end-N).
//
// # Concurrency
//
// Rendering is synchronous and every call owns its canvas, so Generate may
// be called from multiple goroutines.
package userbar
