package models

import "github.com/i2y/acapyclient/pkg/types"

// AdminStatus describes the running agent.
type AdminStatus struct {
	Conductor            types.Opt[map[string]any]
	Label                types.Opt[string]
	Timing               types.Opt[map[string]any]
	Version              types.Opt[string]
	AdditionalProperties map[string]any
}

func (s AdminStatus) ToMap() map[string]any {
	w := NewWriter(s.AdditionalProperties)
	Put(w, "conductor", s.Conductor)
	Put(w, "label", s.Label)
	Put(w, "timing", s.Timing)
	Put(w, "version", s.Version)
	return w.Map()
}

func AdminStatusFromMap(src map[string]any) (AdminStatus, error) {
	r := NewReader("AdminStatus", src)
	s := AdminStatus{
		Conductor: r.OptObject("conductor"),
		Label:     r.OptString("label"),
		Timing:    r.OptObject("timing"),
		Version:   r.OptString("version"),
	}
	s.AdditionalProperties = r.Rest()
	return s, r.Err()
}

func (s AdminStatus) MarshalJSON() ([]byte, error) { return marshalModel(s) }

func (s *AdminStatus) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, s, AdminStatusFromMap)
}

// AdminStatusReadiness reports whether the agent is ready.
type AdminStatusReadiness struct {
	Ready                types.Opt[bool]
	AdditionalProperties map[string]any
}

func (s AdminStatusReadiness) ToMap() map[string]any {
	w := NewWriter(s.AdditionalProperties)
	Put(w, "ready", s.Ready)
	return w.Map()
}

func AdminStatusReadinessFromMap(src map[string]any) (AdminStatusReadiness, error) {
	r := NewReader("AdminStatusReadiness", src)
	s := AdminStatusReadiness{Ready: r.OptBool("ready")}
	s.AdditionalProperties = r.Rest()
	return s, r.Err()
}

func (s AdminStatusReadiness) MarshalJSON() ([]byte, error) { return marshalModel(s) }

func (s *AdminStatusReadiness) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, s, AdminStatusReadinessFromMap)
}

// AdminStatusLiveliness reports whether the agent is alive.
type AdminStatusLiveliness struct {
	Alive                types.Opt[bool]
	AdditionalProperties map[string]any
}

func (s AdminStatusLiveliness) ToMap() map[string]any {
	w := NewWriter(s.AdditionalProperties)
	Put(w, "alive", s.Alive)
	return w.Map()
}

func AdminStatusLivelinessFromMap(src map[string]any) (AdminStatusLiveliness, error) {
	r := NewReader("AdminStatusLiveliness", src)
	s := AdminStatusLiveliness{Alive: r.OptBool("alive")}
	s.AdditionalProperties = r.Rest()
	return s, r.Err()
}

func (s AdminStatusLiveliness) MarshalJSON() ([]byte, error) { return marshalModel(s) }

func (s *AdminStatusLiveliness) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, s, AdminStatusLivelinessFromMap)
}
