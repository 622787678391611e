// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package dynamic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	omap "github.com/wk8/go-ordered-map/v2"
)

// ParseJSON decodes JSON bytes into the any-shaped tree JSONOps operates
// on, preserving object key order (unlike json.Unmarshal into
// map[string]any). This is a convenience parser for the CLI and tests; the
// core algebra only ever receives an already-parsed T (§6 of the spec:
// format parsing is an external collaborator, not a core responsibility).
func ParseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("dynamic: parse JSON: %w", err)
	}
	return v, nil
}

func parseJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseJSONToken(dec, tok)
}

func parseJSONToken(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := omap.New[string, any]()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("dynamic: object key is not a string: %v", keyTok)
				}
				val, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return m, nil
		case '[':
			items := []any{}
			for dec.More() {
				val, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return items, nil
		default:
			return nil, fmt.Errorf("dynamic: unexpected delimiter %v", t)
		}
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	case nil, string, bool:
		return t, nil
	default:
		return nil, fmt.Errorf("dynamic: unsupported token type %T", t)
	}
}

// MarshalJSON renders a JSONOps-shaped tree back to JSON bytes, preserving
// the order keys were set in.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, v); err != nil {
		return nil, fmt.Errorf("dynamic: marshal JSON: %w", err)
	}
	return buf.Bytes(), nil
}

func writeJSONValue(w io.Writer, v any) error {
	switch val := v.(type) {
	case *jsonMap:
		if _, err := io.WriteString(w, "{"); err != nil {
			return err
		}
		first := true
		for p := val.Oldest(); p != nil; p = p.Next() {
			if !first {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			first = false
			keyBytes, err := json.Marshal(p.Key)
			if err != nil {
				return err
			}
			if _, err := w.Write(keyBytes); err != nil {
				return err
			}
			if _, err := io.WriteString(w, ":"); err != nil {
				return err
			}
			if err := writeJSONValue(w, p.Value); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "}")
		return err
	case []any:
		if _, err := io.WriteString(w, "["); err != nil {
			return err
		}
		for i, item := range val {
			if i > 0 {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			if err := writeJSONValue(w, item); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "]")
		return err
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
}
