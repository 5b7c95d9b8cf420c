package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexString accepts any JSON scalar and keeps its textual form, so clients
// may send `"E1"`, `7` or `null` for the same field. Objects and arrays
// decode to "".
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*f = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case b[0] == '{', b[0] == '[':
		*f = ""
	default:
		*f = FlexString(b)
	}
	return nil
}

func (f FlexString) String() string { return string(f) }

func (f FlexString) Trimmed() string { return strings.TrimSpace(string(f)) }

// FlexList is a list of FlexString. A non-array value decodes to an empty list.
type FlexList []FlexString

func (l *FlexList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '[' {
		*l = nil
		return nil
	}
	var items []FlexString
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

func (l FlexList) Strings() []string {
	out := make([]string, 0, len(l))
	for _, v := range l {
		out = append(out, string(v))
	}
	return out
}
