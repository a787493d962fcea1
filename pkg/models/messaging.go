package models

import "github.com/i2y/acapyclient/pkg/types"

// ModuleResponse is the empty object several admin operations return. Any
// keys the agent adds are kept in AdditionalProperties.
type ModuleResponse struct {
	AdditionalProperties map[string]any
}

func (m ModuleResponse) ToMap() map[string]any {
	return NewWriter(m.AdditionalProperties).Map()
}

func ModuleResponseFromMap(src map[string]any) (ModuleResponse, error) {
	r := NewReader("ModuleResponse", src)
	return ModuleResponse{AdditionalProperties: r.Rest()}, r.Err()
}

func (m ModuleResponse) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *ModuleResponse) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, m, ModuleResponseFromMap)
}

// SendMessage is a basic message sent over a connection.
type SendMessage struct {
	Content              types.Opt[string]
	AdditionalProperties map[string]any
}

func (s SendMessage) ToMap() map[string]any {
	w := NewWriter(s.AdditionalProperties)
	Put(w, "content", s.Content)
	return w.Map()
}

func SendMessageFromMap(src map[string]any) (SendMessage, error) {
	r := NewReader("SendMessage", src)
	s := SendMessage{Content: r.OptString("content")}
	s.AdditionalProperties = r.Rest()
	return s, r.Err()
}

func (s SendMessage) MarshalJSON() ([]byte, error) { return marshalModel(s) }

func (s *SendMessage) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, s, SendMessageFromMap)
}

// PingRequest asks the agent to send a trust ping. Comment may be an explicit null.
type PingRequest struct {
	Comment              types.Opt[string]
	AdditionalProperties map[string]any
}

func (p PingRequest) ToMap() map[string]any {
	w := NewWriter(p.AdditionalProperties)
	Put(w, "comment", p.Comment)
	return w.Map()
}

func PingRequestFromMap(src map[string]any) (PingRequest, error) {
	r := NewReader("PingRequest", src)
	p := PingRequest{Comment: r.OptString("comment")}
	p.AdditionalProperties = r.Rest()
	return p, r.Err()
}

func (p PingRequest) MarshalJSON() ([]byte, error) { return marshalModel(p) }

func (p *PingRequest) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, p, PingRequestFromMap)
}

// PingRequestResponse carries the thread id of the ping sent.
type PingRequestResponse struct {
	ThreadID             types.Opt[string]
	AdditionalProperties map[string]any
}

func (p PingRequestResponse) ToMap() map[string]any {
	w := NewWriter(p.AdditionalProperties)
	Put(w, "thread_id", p.ThreadID)
	return w.Map()
}

func PingRequestResponseFromMap(src map[string]any) (PingRequestResponse, error) {
	r := NewReader("PingRequestResponse", src)
	p := PingRequestResponse{ThreadID: r.OptString("thread_id")}
	p.AdditionalProperties = r.Rest()
	return p, r.Err()
}

func (p PingRequestResponse) MarshalJSON() ([]byte, error) { return marshalModel(p) }

func (p *PingRequestResponse) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, p, PingRequestResponseFromMap)
}
