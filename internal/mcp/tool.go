package mcp

// Document: https://modelcontextprotocol.io/docs/concepts/tools

const (
	// Client => Server
	MethodToolsList = "tools/list"
	MethodToolsCall = "tools/call"
)

type M map[string]interface{}

// Tool
//
//	{
//		name: string;          // Unique identifier for the tool
//		description?: string;  // Human-readable description
//		inputSchema: {         // JSON Schema for the tool's parameters
//			type: "object",
//			properties: { ... }  // Tool-specific parameters
//		}
//	}
type Tool struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	InputSchema ToolSchema `json:"inputSchema"`
}

type ToolSchema struct {
	Type       string   `json:"type"`
	Properties M        `json:"properties"`
	Required   []string `json:"required,omitempty"`
}

//	{
//		"method": "tools/call",
//		"params": {
//		  "name": "pdf_to_images",
//		  "arguments": {
//			"pdf_path": "/tmp/report.pdf",
//			"dpi": 200
//		  }
//		},
//		"jsonrpc": "2.0",
//		"id": 3
//	  }
type ToolsCallRequest struct {
	Name      string `json:"name"`
	Arguments M      `json:"arguments"`
}

//	{
//		"jsonrpc": "2.0",
//		"id": 2,
//		"result": {
//		  "content": [
//			{
//			  "type": "text",
//			  "text": "Successfully converted PDF to images."
//			}
//		  ],
//		  "isError": false
//		}
//	  }
type ToolsCallResponse struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError"`
}

type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// TextResult wraps a single text block in a call result.
func TextResult(text string) *ToolsCallResponse {
	return &ToolsCallResponse{
		Content: []Content{{Type: "text", Text: text}},
	}
}

// TextError marks a call result as a tool-domain failure. Distinct from a
// protocol Error: the request was well-formed, the operation failed.
func TextError(text string) *ToolsCallResponse {
	return &ToolsCallResponse{
		Content: []Content{{Type: "text", Text: text}},
		IsError: true,
	}
}
