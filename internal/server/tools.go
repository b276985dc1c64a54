package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func emptySchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func pointSchema(what string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x": map[string]interface{}{
				"type":        "integer",
				"description": "Surface X coordinate of the " + what,
			},
			"y": map[string]interface{}{
				"type":        "integer",
				"description": "Surface Y coordinate of the " + what + " (0 is the top edge)",
			},
		},
		"required": []string{"x", "y"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image
		{
			Name:        "viewer_load",
			Description: "Load a BMP (24-bit, uncompressed) or PPM (P6) file into the viewer. On failure the current image stays on screen.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "viewer_info",
			Description: "Report the loaded file, surface and frame sizes, resample mode, display flags and toolbar state.",
			InputSchema: emptySchema(),
		},

		// Window events
		{
			Name:        "viewer_resize",
			Description: "Resize the display surface. The frame is refilled with nearest-neighbour sampling unless settle is true, in which case the configured quality mode is used.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Surface width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Surface height in pixels",
					},
					"settle": map[string]interface{}{
						"type":        "boolean",
						"description": "Re-render with the quality mode after resizing. Default true",
						"default":     true,
					},
				},
				"required": []string{"width", "height"},
			},
		},
		{
			Name:        "viewer_pointer",
			Description: "Move the pointer. Hovering the toolbar button highlights it.",
			InputSchema: pointSchema("pointer"),
		},
		{
			Name:        "viewer_click",
			Description: "Click at a surface position. Clicking the toolbar button toggles colour inversion.",
			InputSchema: pointSchema("click"),
		},

		// Display flags
		{
			Name:        "viewer_rotate",
			Description: "Rotate the image by quarter turns. Positive values turn clockwise.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"quarter_turns": map[string]interface{}{
						"type":        "integer",
						"description": "Number of 90° clockwise turns; negative turns counter-clockwise. Default 1",
						"default":     1,
					},
				},
			},
		},
		{
			Name:        "viewer_toggle",
			Description: "Set or flip a display option: grayscale, inverted, aspect_lock, or change the resample mode.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"option": map[string]interface{}{
						"type":        "string",
						"description": "Option to change",
						"enum":        []string{"grayscale", "inverted", "aspect_lock", "mode"},
					},
					"value": map[string]interface{}{
						"type":        "boolean",
						"description": "New value for boolean options. Omit to flip the current value",
					},
					"mode": map[string]interface{}{
						"type":        "string",
						"description": "Resample mode when option is \"mode\"",
						"enum":        []string{"nearest", "bilinear", "lanczos"},
					},
				},
				"required": []string{"option"},
			},
		},

		// Output
		{
			Name:        "viewer_render",
			Description: "Composite the current surface and return it as base64-encoded PNG.",
			InputSchema: emptySchema(),
		},
		{
			Name:        "viewer_sample",
			Description: "Read the colour of the composited surface at a position, as hex, RGBA and HSL.",
			InputSchema: pointSchema("sample"),
		},
		{
			Name:        "viewer_snapshot",
			Description: "Write the composited surface to a file. The format follows the extension: .png, .jpg/.jpeg or .bmp.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the output file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
