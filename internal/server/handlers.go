package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/swiv/internal/codec"
	"github.com/ironsheep/swiv/internal/render"
	"github.com/ironsheep/swiv/internal/toolbar"
	"github.com/ironsheep/swiv/internal/viewer"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "viewer_load", "viewer_render").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler unmarshals its arguments, applies defaults for optional
// parameters, drives the viewer and returns a state report or an error.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image
	case "viewer_load":
		return s.handleViewerLoad(args)
	case "viewer_info":
		return s.state(), nil

	// Window events
	case "viewer_resize":
		return s.handleViewerResize(args)
	case "viewer_pointer":
		return s.handleViewerPointer(args)
	case "viewer_click":
		return s.handleViewerClick(args)

	// Display flags
	case "viewer_rotate":
		return s.handleViewerRotate(args)
	case "viewer_toggle":
		return s.handleViewerToggle(args)

	// Output
	case "viewer_render":
		return s.handleViewerRender()
	case "viewer_sample":
		return s.handleViewerSample(args)
	case "viewer_snapshot":
		return s.handleViewerSnapshot(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating absent arguments as {}.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ViewerState is the report returned by most tools.
type ViewerState struct {
	File       *codec.Info `json:"file,omitempty"`
	Image      Size        `json:"image"`
	Effective  Size        `json:"effective"`
	Surface    Size        `json:"surface"`
	Frame      Size        `json:"frame"`
	Mode       string      `json:"mode"`
	Rotation   int         `json:"rotation_degrees"`
	Grayscale  bool        `json:"grayscale"`
	Inverted   bool        `json:"inverted"`
	AspectLock bool        `json:"aspect_lock"`
	Pressed    bool        `json:"button_pressed"`
	Caption    string      `json:"button_caption"`
	Background string      `json:"background"`
	Changed    *bool       `json:"changed,omitempty"`
}

func (s *Server) state() *ViewerState {
	v := s.viewer
	img := v.Image()
	ew, eh := img.EffectiveSize()
	sw, sh := v.SurfaceSize()
	return &ViewerState{
		File:       v.Info(),
		Image:      Size{img.Width(), img.Height()},
		Effective:  Size{ew, eh},
		Surface:    Size{sw, sh},
		Frame:      Size{v.Frame().Width, v.Frame().Height},
		Mode:       v.Mode().String(),
		Rotation:   img.Rotation().Degrees(),
		Grayscale:  img.Grayscale(),
		Inverted:   img.Inverted(),
		AspectLock: img.LockedAspectRatio(),
		Pressed:    v.Toolbar().Pressed(),
		Caption:    v.Toolbar().Caption(),
		Background: viewer.FormatColor(v.Frame().Background),
	}
}

func (s *Server) changed(c bool) *ViewerState {
	st := s.state()
	st.Changed = &c
	return st
}

// === Image Handlers ===

type viewerLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleViewerLoad(args json.RawMessage) (interface{}, error) {
	var a viewerLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if err := s.viewer.Load(a.Path); err != nil {
		return nil, err
	}
	return s.state(), nil
}

// === Window Event Handlers ===

type viewerResizeArgs struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Settle *bool `json:"settle"`
}

func (s *Server) handleViewerResize(args json.RawMessage) (interface{}, error) {
	var a viewerResizeArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width < 0 || a.Height < 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", a.Width, a.Height)
	}

	changed := s.viewer.Resize(a.Width, a.Height)
	if a.Settle == nil || *a.Settle {
		s.viewer.Settle()
	}
	return s.changed(changed), nil
}

type viewerPointArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleViewerPointer(args json.RawMessage) (interface{}, error) {
	var a viewerPointArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	_, sh := s.viewer.SurfaceSize()
	changed := s.viewer.PointerMoved(a.X, a.Y)
	return map[string]interface{}{
		"changed":   changed,
		"on_button": toolbar.Hit(a.X, a.Y, sh),
	}, nil
}

func (s *Server) handleViewerClick(args json.RawMessage) (interface{}, error) {
	var a viewerPointArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return s.changed(s.viewer.Click(a.X, a.Y)), nil
}

// === Display Flag Handlers ===

type viewerRotateArgs struct {
	QuarterTurns *int `json:"quarter_turns"`
}

func (s *Server) handleViewerRotate(args json.RawMessage) (interface{}, error) {
	var a viewerRotateArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	turns := 1
	if a.QuarterTurns != nil {
		turns = *a.QuarterTurns
	}
	s.viewer.Rotate(turns)
	return s.state(), nil
}

type viewerToggleArgs struct {
	Option string `json:"option"`
	Value  *bool  `json:"value"`
	Mode   string `json:"mode"`
}

func (s *Server) handleViewerToggle(args json.RawMessage) (interface{}, error) {
	var a viewerToggleArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	img := s.viewer.Image()
	value := func(current bool) bool {
		if a.Value != nil {
			return *a.Value
		}
		return !current
	}

	switch a.Option {
	case "grayscale":
		s.viewer.SetGrayscale(value(img.Grayscale()))
	case "inverted":
		s.viewer.SetInverted(value(img.Inverted()))
	case "aspect_lock":
		s.viewer.SetLockedAspectRatio(value(img.LockedAspectRatio()))
	case "mode":
		m, err := render.ParseMode(a.Mode)
		if err != nil {
			return nil, err
		}
		s.viewer.SetMode(m)
	default:
		return nil, fmt.Errorf("unknown option %q (valid: grayscale, inverted, aspect_lock, mode)", a.Option)
	}
	return s.state(), nil
}

// === Output Handlers ===

func (s *Server) handleViewerRender() (interface{}, error) {
	w, h := s.viewer.SurfaceSize()
	return render.EncodePNG(s.viewer.Render(), w, h)
}

func (s *Server) handleViewerSample(args json.RawMessage) (interface{}, error) {
	var a viewerPointArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return s.viewer.Sample(a.X, a.Y)
}

type viewerSnapshotArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleViewerSnapshot(args json.RawMessage) (interface{}, error) {
	var a viewerSnapshotArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if err := s.viewer.Snapshot(a.Path); err != nil {
		return nil, err
	}
	w, h := s.viewer.SurfaceSize()
	return map[string]interface{}{
		"path":   a.Path,
		"width":  w,
		"height": h,
	}, nil
}
