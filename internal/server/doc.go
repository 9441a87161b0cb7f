// Package server implements the MCP (Model Context Protocol) server for the
// paint tools.
//
// The server speaks JSON-RPC 2.0 over newline-delimited stdio: one request
// per line on stdin, one response per line on stdout. Logs go to stderr
// through the hclog logger handed to New.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image information:
//   - image_load, image_dimensions: metadata, caching the decoded image
//   - image_unload: drop one or all cached images
//
// Color sampling:
//   - image_sample_color, image_sample_colors_multi: exact pixel colors
//   - image_dominant_colors: quantized palette
//
// Selection and canvas:
//   - image_crop: rectangular crop with optional scaling
//   - image_select_content: trim a uniform border
//   - image_select_rectangle: drag selection with optional square constraint
//   - image_resize_canvas: anchored canvas resize
//
// Color model:
//   - color_convert: hex, RGBA or HSV in, every representation out
//   - color_adjust: set one picker channel, or replace via hex
//   - color_distance: CIEDE2000 difference
//   - color_wheel_pick, color_wheel_locate, color_wheel_render: HSV wheel
//
// Tools that produce an image return it as base64 PNG and accept an
// optional output_path to also write it to disk.
//
// # Error Handling
//
// Unknown methods return -32601 and malformed tools/call params -32602.
// Tool failures return -32000 with the Go error string as data. The one
// exception is color_adjust with channel hex: an unparsable replacement
// is not an error, the previous color comes back with changed set to false.
//
// # Usage
//
//	cfg, _ := config.Load()
//	srv := server.New(cfg, cfg.NewLogger(os.Stderr))
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
