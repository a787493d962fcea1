package models

import "github.com/i2y/acapyclient/pkg/types"

// AttachDecoratorData is the payload of an attachment. Exactly one of the
// content fields is normally set.
type AttachDecoratorData struct {
	Base64               types.Opt[string]
	JSON                 types.Opt[any]
	JWS                  types.Opt[map[string]any]
	Links                types.Opt[[]string]
	SHA256               types.Opt[string]
	AdditionalProperties map[string]any
}

func (d AttachDecoratorData) ToMap() map[string]any {
	w := NewWriter(d.AdditionalProperties)
	Put(w, "base64", d.Base64)
	Put(w, "json", d.JSON)
	Put(w, "jws", d.JWS)
	Put(w, "links", d.Links)
	Put(w, "sha256", d.SHA256)
	return w.Map()
}

func AttachDecoratorDataFromMap(src map[string]any) (AttachDecoratorData, error) {
	r := NewReader("AttachDecoratorData", src)
	d := AttachDecoratorData{
		Base64: r.OptString("base64"),
		JSON:   r.OptAny("json"),
		JWS:    r.OptObject("jws"),
		Links:  r.OptStrings("links"),
		SHA256: r.OptString("sha256"),
	}
	d.AdditionalProperties = r.Rest()
	return d, r.Err()
}

func (d AttachDecoratorData) MarshalJSON() ([]byte, error) { return marshalModel(d) }

func (d *AttachDecoratorData) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, d, AttachDecoratorDataFromMap)
}

// AttachDecorator is a DIDComm attachment (the ~attach decorator).
type AttachDecorator struct {
	Data                 AttachDecoratorData
	ID                   types.Opt[string]
	ByteCount            types.Opt[int]
	Description          types.Opt[string]
	Filename             types.Opt[string]
	LastmodTime          types.Opt[string]
	MimeType             types.Opt[string]
	AdditionalProperties map[string]any
}

func (a AttachDecorator) ToMap() map[string]any {
	w := NewWriter(a.AdditionalProperties)
	w.Set("data", a.Data.ToMap())
	Put(w, "@id", a.ID)
	Put(w, "byte_count", a.ByteCount)
	Put(w, "description", a.Description)
	Put(w, "filename", a.Filename)
	Put(w, "lastmod_time", a.LastmodTime)
	Put(w, "mime-type", a.MimeType)
	return w.Map()
}

func AttachDecoratorFromMap(src map[string]any) (AttachDecorator, error) {
	r := NewReader("AttachDecorator", src)
	a := AttachDecorator{
		Data:        Nested(r, "data", AttachDecoratorDataFromMap),
		ID:          r.OptString("@id"),
		ByteCount:   r.OptInt("byte_count"),
		Description: r.OptString("description"),
		Filename:    r.OptString("filename"),
		LastmodTime: r.OptString("lastmod_time"),
		MimeType:    r.OptString("mime-type"),
	}
	a.AdditionalProperties = r.Rest()
	return a, r.Err()
}

func (a AttachDecorator) MarshalJSON() ([]byte, error) { return marshalModel(a) }

func (a *AttachDecorator) UnmarshalJSON(data []byte) error {
	return unmarshalModel(data, a, AttachDecoratorFromMap)
}
