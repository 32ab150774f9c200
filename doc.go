// Package paint implements an interactive two-layer raster drawing session.
//
// # Overview
//
// A paint session owns two raster surfaces of equal size: the persistent
// surface holding committed artwork and a transparent overlay used for live
// tool previews. Events from a host (pointer press, move, release and key
// down) are fed to a [Controller], which interprets them according to the
// active tool and commits pixels to the persistent surface.
//
// # Quick Start
//
//	import "github.com/gogpu/paint"
//
//	c, err := paint.NewController(800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c.SetStrokeColor(paint.Red)
//	c.SetStrokeWidth(8)
//
//	// Freehand stroke
//	_ = c.Press(10, 10)
//	_ = c.Move(40, 25)
//	_ = c.Release(80, 60)
//
//	// Bucket fill
//	c.SelectFill()
//	_ = c.Press(200, 200)
//
//	f, _ := os.Create("out.png")
//	defer f.Close()
//	_ = c.EncodePNG(f)
//
// # Tools
//
// The available tools are freehand stroke (the default), straight line,
// circle, flood fill, crop and text. The crop tool captures a rectangle of the
// persistent surface, cuts it to the background colour and then switches to a
// place state in which every click stamps the captured pixels until another
// tool is selected.
//
// # Errors
//
// Entry points are best-effort. Every handler returns an error describing a
// failed pixel access or font lookup, but the session state is always left
// consistent and a host may discard the error. Invalid text input is ignored
// without an error.
//
// # Rendering
//
// Surfaces are rendered with [github.com/gogpu/gg]. Pixel access (crop, stamp,
// flood fill) bypasses the rasterizer and operates on the raw RGBA bytes of
// the layer, so those operations are pixel exact.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Pixel
// buffers are row-major RGBA, 4 bytes per pixel.
package paint
