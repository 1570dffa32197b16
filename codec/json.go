package codec

import "encoding/json"

// JSON is the standard-library codec. NaN and infinities are rejected by
// the encoder; use the binary frame for vectors that may hold them.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (JSON) Name() string { return "json" }
