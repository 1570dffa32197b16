package codec

import gojson "github.com/goccy/go-json"

// GoJSON is backed by github.com/goccy/go-json. Element arrays encode
// byte for byte like JSON.
//
// The no-escape entry points are safe here because callers pass slices
// and pointers to slices, which never have to outlive the call.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.MarshalNoEscape(v) }

func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.UnmarshalNoEscape(data, v) }

func (GoJSON) Name() string { return "go-json" }
