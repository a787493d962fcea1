package models

import "github.com/i2y/acapyclient/pkg/types"

// MenuFormParam is one input field of a menu form.
type MenuFormParam struct {
	Name                 string
	Title                string
	Default              types.Opt[string]
	Description          types.Opt[string]
	InputType            types.Opt[string]
	Required             types.Opt[bool]
	AdditionalProperties map[string]any
}

func (p MenuFormParam) ToMap() map[string]any {
	w := NewWriter(p.AdditionalProperties)
	w.Set("name", p.Name)
	w.Set("title", p.Title)
	Put(w, "default", p.Default)
	Put(w, "description", p.Description)
	Put(w, "input_type", p.InputType)
	Put(w, "required", p.Required)
	return w.Map()
}

func MenuFormParamFromMap(src map[string]any) (MenuFormParam, error) {
	r := NewReader("MenuFormParam", src)
	p := MenuFormParam{
		Name:        r.String("name"),
		Title:       r.String("title"),
		Default:     r.OptString("default"),
		Description: r.OptString("description"),
		InputType:   r.OptString("input_type"),
		Required:    r.OptBool("required"),
	}
	p.AdditionalProperties = r.Rest()
	return p, r.Err()
}

func (p MenuFormParam) MarshalJSON() ([]byte, error) { return marshalModel(p) }

func (p *MenuFormParam) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, p, MenuFormParamFromMap)
}

// MenuForm is the form attached to a menu option.
type MenuForm struct {
	Description          types.Opt[string]
	Params               types.Opt[[]MenuFormParam]
	SubmitLabel          types.Opt[string]
	Title                types.Opt[string]
	AdditionalProperties map[string]any
}

func (f MenuForm) ToMap() map[string]any {
	w := NewWriter(f.AdditionalProperties)
	Put(w, "description", f.Description)
	PutModels(w, "params", f.Params)
	Put(w, "submit-label", f.SubmitLabel)
	Put(w, "title", f.Title)
	return w.Map()
}

func MenuFormFromMap(src map[string]any) (MenuForm, error) {
	r := NewReader("MenuForm", src)
	f := MenuForm{
		Description: r.OptString("description"),
		Params:      OptList(r, "params", MenuFormParamFromMap),
		SubmitLabel: r.OptString("submit-label"),
		Title:       r.OptString("title"),
	}
	f.AdditionalProperties = r.Rest()
	return f, r.Err()
}

func (f MenuForm) MarshalJSON() ([]byte, error) { return marshalModel(f) }

func (f *MenuForm) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, f, MenuFormFromMap)
}

// MenuOption is one entry of an action menu.
type MenuOption struct {
	Name                 string
	Title                string
	Description          types.Opt[string]
	Disabled             types.Opt[bool]
	Form                 types.Opt[MenuForm]
	AdditionalProperties map[string]any
}

func (o MenuOption) ToMap() map[string]any {
	w := NewWriter(o.AdditionalProperties)
	w.Set("name", o.Name)
	w.Set("title", o.Title)
	Put(w, "description", o.Description)
	Put(w, "disabled", o.Disabled)
	PutModel(w, "form", o.Form)
	return w.Map()
}

func MenuOptionFromMap(src map[string]any) (MenuOption, error) {
	r := NewReader("MenuOption", src)
	o := MenuOption{
		Name:        r.String("name"),
		Title:       r.String("title"),
		Description: r.OptString("description"),
		Disabled:    r.OptBool("disabled"),
		Form:        OptNested(r, "form", MenuFormFromMap),
	}
	o.AdditionalProperties = r.Rest()
	return o, r.Err()
}

func (o MenuOption) MarshalJSON() ([]byte, error) { return marshalModel(o) }

func (o *MenuOption) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, o, MenuOptionFromMap)
}

// Menu is an action menu offered by a peer.
type Menu struct {
	Options              []MenuOption
	ID                   types.Opt[string]
	Type                 types.Opt[string]
	Description          types.Opt[string]
	Errormsg             types.Opt[string]
	Title                types.Opt[string]
	AdditionalProperties map[string]any
}

func (m Menu) ToMap() map[string]any {
	w := NewWriter(m.AdditionalProperties)
	w.Set("options", Maps(m.Options))
	Put(w, "@id", m.ID)
	Put(w, "@type", m.Type)
	Put(w, "description", m.Description)
	Put(w, "errormsg", m.Errormsg)
	Put(w, "title", m.Title)
	return w.Map()
}

func MenuFromMap(src map[string]any) (Menu, error) {
	r := NewReader("Menu", src)
	m := Menu{
		Options:     List(r, "options", MenuOptionFromMap),
		ID:          r.OptString("@id"),
		Type:        r.OptString("@type"),
		Description: r.OptString("description"),
		Errormsg:    r.OptString("errormsg"),
		Title:       r.OptString("title"),
	}
	m.AdditionalProperties = r.Rest()
	return m, r.Err()
}

func (m Menu) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *Menu) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, m, MenuFromMap)
}

// ActionMenuFetchResult holds the active menu for a connection, if any.
type ActionMenuFetchResult struct {
	Result               types.Opt[Menu]
	AdditionalProperties map[string]any
}

func (a ActionMenuFetchResult) ToMap() map[string]any {
	w := NewWriter(a.AdditionalProperties)
	PutModel(w, "result", a.Result)
	return w.Map()
}

func ActionMenuFetchResultFromMap(src map[string]any) (ActionMenuFetchResult, error) {
	r := NewReader("ActionMenuFetchResult", src)
	a := ActionMenuFetchResult{Result: OptNested(r, "result", MenuFromMap)}
	a.AdditionalProperties = r.Rest()
	return a, r.Err()
}

func (a ActionMenuFetchResult) MarshalJSON() ([]byte, error) { return marshalModel(a) }

func (a *ActionMenuFetchResult) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, a, ActionMenuFetchResultFromMap)
}

// PerformRequest selects a menu option, with form values in Params.
type PerformRequest struct {
	Name                 types.Opt[string]
	Params               types.Opt[map[string]string]
	AdditionalProperties map[string]any
}

func (p PerformRequest) ToMap() map[string]any {
	w := NewWriter(p.AdditionalProperties)
	Put(w, "name", p.Name)
	Put(w, "params", p.Params)
	return w.Map()
}

func PerformRequestFromMap(src map[string]any) (PerformRequest, error) {
	r := NewReader("PerformRequest", src)
	p := PerformRequest{
		Name:   r.OptString("name"),
		Params: r.OptStringMap("params"),
	}
	p.AdditionalProperties = r.Rest()
	return p, r.Err()
}

func (p PerformRequest) MarshalJSON() ([]byte, error) { return marshalModel(p) }

func (p *PerformRequest) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, p, PerformRequestFromMap)
}
