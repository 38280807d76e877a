package apitypes

import (
	"bytes"
	"encoding/json"
)

type DetailKind uint8

const (
	DetailMissing DetailKind = iota
	DetailPlain
	DetailStructured
	DetailOther
)

// Detail is the "detail" field of an error body: a plain string, a
// {code, reason} object, or something the client does not recognise.
type Detail struct {
	Kind   DetailKind
	Text   string
	Code   string
	Reason string
	Raw    json.RawMessage
}

type structuredDetail struct {
	Code   string `json:"code"`
	Reason string `json:"reason,omitempty"`
}

func (d *Detail) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*d = Detail{Raw: append(json.RawMessage(nil), trimmed...)}

	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		d.Kind = DetailMissing

		return nil
	}

	switch trimmed[0] {
	case '"':
		if err := json.Unmarshal(trimmed, &d.Text); err != nil {
			return err
		}

		d.Kind = DetailPlain
	case '{':
		var s structuredDetail
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}

		d.Kind = DetailStructured
		d.Code = s.Code
		d.Reason = s.Reason
	default:
		d.Kind = DetailOther
	}

	return nil
}

func (d Detail) MarshalJSON() ([]byte, error) {
	if len(d.Raw) > 0 {
		return d.Raw, nil
	}

	switch d.Kind {
	case DetailPlain:
		return json.Marshal(d.Text)
	case DetailStructured:
		return json.Marshal(structuredDetail{Code: d.Code, Reason: d.Reason})
	default:
		return []byte("null"), nil
	}
}

// String is the text shown to a user for this detail, or "" when the
// detail carries nothing usable.
func (d Detail) String() string {
	switch d.Kind {
	case DetailPlain:
		return d.Text
	case DetailStructured, DetailOther:
		return string(d.Raw)
	default:
		return ""
	}
}
