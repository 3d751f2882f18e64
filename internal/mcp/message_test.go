package mcp

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestParseMessageKinds(t *testing.T) {
	cases := []struct {
		name string
		line string
		want Kind
	}{
		{"request", `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`, KindRequest},
		{"request string id", `{"jsonrpc":"2.0","id":"abc","method":"tools/list"}`, KindRequest},
		{"notification", `{"jsonrpc":"2.0","method":"notifications/initialized"}`, KindNotification},
		{"response", `{"jsonrpc":"2.0","id":7,"result":{"ok":true}}`, KindResponse},
		{"error", `{"jsonrpc":"2.0","id":7,"error":{"code":-32601,"message":"Method not found"}}`, KindError},
	}

	for _, c := range cases {
		msg, err := ParseMessage([]byte(c.line))
		if err != nil {
			t.Errorf("%s: ParseMessage() error: %v", c.name, err)
			continue
		}
		if msg.Kind() != c.want {
			t.Errorf("%s: Kind() = %v, want %v", c.name, msg.Kind(), c.want)
		}
	}
}

func TestParseMessageRejectsGarbage(t *testing.T) {
	for _, line := range []string{
		`not json at all`,
		`{"jsonrpc":"2.0"}`,
		`{}`,
		`[1,2,3]`,
	} {
		if _, err := ParseMessage([]byte(line)); err == nil {
			t.Errorf("ParseMessage(%q) should fail", line)
		}
	}
}

func TestParseMessageIDNormalization(t *testing.T) {
	msg, err := ParseMessage([]byte(`{"jsonrpc":"2.0","id":42,"method":"ping"}`))
	if err != nil {
		t.Fatalf("ParseMessage() error: %v", err)
	}
	if id, ok := msg.ID.(int64); !ok || id != 42 {
		t.Errorf("numeric id = %v (%T), want int64 42", msg.ID, msg.ID)
	}

	msg, err = ParseMessage([]byte(`{"jsonrpc":"2.0","id":"req-9","method":"ping"}`))
	if err != nil {
		t.Fatalf("ParseMessage() error: %v", err)
	}
	if id, ok := msg.ID.(string); !ok || id != "req-9" {
		t.Errorf("string id = %v (%T), want req-9", msg.ID, msg.ID)
	}

	// An int64 id must serialize back without float formatting.
	b, _ := json.Marshal(NewResponse(int64(42), M{}))
	var echo struct {
		ID json.Number `json:"id"`
	}
	if err := json.Unmarshal(b, &echo); err != nil {
		t.Fatalf("unmarshal echo: %v", err)
	}
	if echo.ID.String() != "42" {
		t.Errorf("echoed id = %s, want 42", echo.ID.String())
	}
}

func TestResponseRoundTrip(t *testing.T) {
	// Everything this server can emit must re-parse with the same
	// discriminant and identical id.
	cases := []struct {
		name string
		resp *Response
		want Kind
	}{
		{"result", NewResponse(int64(3), M{"tools": []Tool{}}), KindResponse},
		{"error", NewErrorResponse("abc", CodeMethodNotFound, fmt.Errorf("Method not found: nope")), KindError},
		{"not initialized", NewErrorResponse(int64(5), CodeNotInitialized, fmt.Errorf("Server not initialized")), KindError},
	}

	for _, c := range cases {
		b, err := json.Marshal(c.resp)
		if err != nil {
			t.Fatalf("%s: marshal: %v", c.name, err)
		}
		msg, err := ParseMessage(b)
		if err != nil {
			t.Fatalf("%s: reparse: %v", c.name, err)
		}
		if msg.Kind() != c.want {
			t.Errorf("%s: Kind() = %v, want %v", c.name, msg.Kind(), c.want)
		}
		if fmt.Sprintf("%v", msg.ID) != fmt.Sprintf("%v", c.resp.ID) {
			t.Errorf("%s: id = %v, want %v", c.name, msg.ID, c.resp.ID)
		}
	}
}

func TestErrorEnvelopeShape(t *testing.T) {
	resp := NewErrorResponse(int64(1), CodeInvalidParams, fmt.Errorf("Invalid params: boom"))
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["result"]; ok {
		t.Errorf("error envelope must not carry a result field: %s", b)
	}
	errObj, ok := m["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing error object: %s", b)
	}
	if errObj["code"].(float64) != CodeInvalidParams {
		t.Errorf("code = %v, want %d", errObj["code"], CodeInvalidParams)
	}
}

func TestTextResultHelpers(t *testing.T) {
	ok := TextResult("done")
	if ok.IsError || len(ok.Content) != 1 || ok.Content[0].Type != "text" || ok.Content[0].Text != "done" {
		t.Errorf("TextResult() = %+v", ok)
	}

	bad := TextError("Error: boom")
	if !bad.IsError || bad.Content[0].Text != "Error: boom" {
		t.Errorf("TextError() = %+v", bad)
	}
}
