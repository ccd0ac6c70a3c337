// Package termview shows mosaic canvases in a terminal.
//
// Sink implements mosaic.DisplaySink. Each character cell carries two
// vertically stacked pixels: the upper half-block glyph is drawn with the
// upper pixel as foreground and the lower pixel as background colour. The
// canvas is first shrunk with the area resampler so that it fits inside the
// terminal, leaving room for a title line and a key hint.
//
// # Waiting
//
// The wait argument of Display follows mosaic.DisplaySink:
//
//   - mosaic.NoWait prints the canvas and returns
//   - mosaic.WaitForever runs a bubbletea program until a key is pressed
//   - a positive duration ends the program on a key or when it elapses
//
// Cancelling the context passed to Display ends any wait and Display
// returns the context's error.
//
// # Usage
//
//	sink := termview.New()
//	err := mosaic.ComposeAndDisplay(ctx, sink, "frames", mosaic.WaitForever, images)
package termview
