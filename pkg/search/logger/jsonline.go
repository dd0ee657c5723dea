package logger

import (
	"bytes"
	"encoding/json"
)

// marshalCompact encodes v as HTML-unescaped, whitespace-compacted JSON. It
// is used to render one trace record per line to a logger's output writer.
func marshalCompact(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	out := &bytes.Buffer{}
	if err := json.Compact(out, buf.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
