package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// APIErrors holds provider error messages.
// The provider sends either a list (`["rate limited"]`) or an object keyed by field
// (`{"token": "invalid"}`); both decode to a flat list, and an empty value decodes to nil.
type APIErrors []string

// UnmarshalJSON accepts the list, object, string and null forms.
func (e *APIErrors) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*e = nil
		return nil
	}

	var msgs []string
	switch trimmed[0] {
	case '[':
		var list []any
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		for _, v := range list {
			msgs = append(msgs, stringify(v))
		}
	case '{':
		var obj map[string]any
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		keys := sortedKeys(obj)
		for _, k := range keys {
			msgs = append(msgs, fmt.Sprintf("%s: %s", k, stringify(obj[k])))
		}
	default:
		var single any
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		if s := stringify(single); s != "" {
			msgs = append(msgs, s)
		}
	}

	if len(msgs) == 0 {
		*e = nil
		return nil
	}
	*e = msgs
	return nil
}

// MarshalJSON always emits a list; nil encodes as [].
func (e APIErrors) MarshalJSON() ([]byte, error) {
	if len(e) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(e))
}

// Parameters echoes the query parameters of a provider response.
// The provider sends [] when there were none; that and {} decode to nil.
type Parameters map[string]string

// UnmarshalJSON accepts an object with scalar values, or an (ignored) empty list.
func (p *Parameters) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		*p = nil
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return err
	}
	if len(obj) == 0 {
		*p = nil
		return nil
	}
	out := make(Parameters, len(obj))
	for k, v := range obj {
		out[k] = stringify(v)
	}
	*p = out
	return nil
}

// MarshalJSON emits an object, or [] when there are no parameters.
func (p Parameters) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(map[string]string(p))
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(raw)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
