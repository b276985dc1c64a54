// Package server exposes a viewer session as an MCP (Model Context Protocol)
// server.
//
// It is a JSON-RPC 2.0 server over stdio that lets an MCP client drive the
// viewer the way a window host would: load an image, resize the surface,
// move and click the pointer, change display flags, and read the composited
// result back.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image:
//   - viewer_load: Decode a BMP or PPM file and display it
//   - viewer_info: Report image, surface, frame and flag state
//
// Window events:
//   - viewer_resize: Resize the surface, optionally settling at full quality
//   - viewer_pointer: Pointer movement (toolbar hover)
//   - viewer_click: Pointer press (toolbar button toggles inversion)
//
// Display flags:
//   - viewer_rotate: Quarter-turn rotation
//   - viewer_toggle: Grayscale, inversion, aspect lock, resample mode
//
// Output:
//   - viewer_render: Composited surface as base64 PNG
//   - viewer_sample: Colour of one surface pixel
//   - viewer_snapshot: Composited surface written to a PNG, JPEG or BMP file
//
// # Concurrency
//
// Requests are handled one at a time in arrival order on the calling
// goroutine, which is the only goroutine touching the viewer.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	v := viewer.New(viewer.Config{})
//	srv := server.New(v, logger, version)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
