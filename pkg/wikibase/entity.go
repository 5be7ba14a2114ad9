package wikibase

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Entity is an item as returned by the "wbgetentities" action.
//
// Only the parts used for FDO rendering are modelled.
type Entity struct {
	ID           string `json:"id"`
	Type         string `json:"type,omitempty"`
	Modified     string `json:"modified,omitempty"`
	Labels       Terms  `json:"labels,omitempty"`
	Descriptions Terms  `json:"descriptions,omitempty"`
	Claims       Claims `json:"claims,omitempty"`

	// Missing is non-nil when the backend marks the entity as nonexistent.
	Missing *string `json:"missing,omitempty"`
}

// Label returns the label in lang.
func (e *Entity) Label(lang string) (string, bool) {
	return e.Labels.Get(lang)
}

// Description returns the description in lang.
func (e *Entity) Description(lang string) (string, bool) {
	return e.Descriptions.Get(lang)
}

// Term is a text in a language.
type Term struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Terms maps language codes to terms.
//
// The backend serializes an empty set as "[]"; that is accepted as well as "{}".
type Terms map[string]Term

func (t *Terms) UnmarshalJSON(b []byte) error {
	if isEmptyArray(b) {
		*t = Terms{}
		return nil
	}
	m := map[string]Term{}
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*t = m
	return nil
}

func (t Terms) Get(lang string) (string, bool) {
	term, ok := t[lang]
	if !ok {
		return "", false
	}
	return term.Value, true
}

// Claims maps property ids (like "P31") to statements, in the order the backend sent them.
type Claims map[string][]Statement

func (c *Claims) UnmarshalJSON(b []byte) error {
	if isEmptyArray(b) {
		*c = Claims{}
		return nil
	}
	m := map[string][]Statement{}
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*c = m
	return nil
}

// Values returns datavalues of statements for the property, skipping "novalue"/"somevalue" snaks.
func (c Claims) Values(property string) []DataValue {
	stmts := c[property]
	values := make([]DataValue, 0, len(stmts))
	for _, s := range stmts {
		if s.Mainsnak.DataValue == nil {
			continue
		}
		values = append(values, *s.Mainsnak.DataValue)
	}
	return values
}

// First returns the datavalue of the first statement for the property.
//
// Only the first statement is considered; when it has no value, ok is false.
func (c Claims) First(property string) (DataValue, bool) {
	stmts := c[property]
	if len(stmts) == 0 || stmts[0].Mainsnak.DataValue == nil {
		return DataValue{}, false
	}
	return *stmts[0].Mainsnak.DataValue, true
}

type Statement struct {
	ID       string `json:"id,omitempty"`
	Rank     string `json:"rank,omitempty"`
	Mainsnak Snak   `json:"mainsnak"`
}

type Snak struct {
	SnakType  string     `json:"snaktype,omitempty"`
	Property  string     `json:"property,omitempty"`
	DataType  string     `json:"datatype,omitempty"`
	DataValue *DataValue `json:"datavalue,omitempty"`
}

// datavalue types
const (
	TypeString          = "string"
	TypeEntityID        = "wikibase-entityid"
	TypeTime            = "time"
	TypeMonolingualText = "monolingualtext"
	TypeQuantity        = "quantity"
)

// DataValue is a tagged value of a snak.
//
// Type tells which field is meaningful:
//
//   - TypeString: String
//   - TypeEntityID: EntityID
//   - TypeTime: Time (raw, like "+2020-01-01T00:00:00Z")
//   - TypeMonolingualText: Text and Language
//   - TypeQuantity: Amount
//
// For other types, only Type is set.
type DataValue struct {
	Type     string
	String   string
	EntityID string
	Time     string
	Text     string
	Language string
	Amount   string
}

func (dv *DataValue) UnmarshalJSON(b []byte) error {
	raw := struct {
		Type  string          `json:"type"`
		Value json.RawMessage `json:"value"`
	}{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	typ := raw.Type
	if typ == "" {
		typ = inferType(raw.Value)
	}

	out := DataValue{Type: typ}
	switch typ {
	case TypeString:
		if err := json.Unmarshal(raw.Value, &out.String); err != nil {
			return fmt.Errorf("datavalue (%s): %w", typ, err)
		}
	case TypeEntityID:
		v := struct {
			ID        string `json:"id"`
			NumericID *int64 `json:"numeric-id"`
		}{}
		if err := json.Unmarshal(raw.Value, &v); err != nil {
			return fmt.Errorf("datavalue (%s): %w", typ, err)
		}
		out.EntityID = v.ID
		if out.EntityID == "" && v.NumericID != nil {
			out.EntityID = fmt.Sprintf("Q%d", *v.NumericID)
		}
	case TypeTime:
		v := struct {
			Time string `json:"time"`
		}{}
		if err := json.Unmarshal(raw.Value, &v); err != nil {
			return fmt.Errorf("datavalue (%s): %w", typ, err)
		}
		out.Time = v.Time
	case TypeMonolingualText:
		v := struct {
			Text     string `json:"text"`
			Language string `json:"language"`
		}{}
		if err := json.Unmarshal(raw.Value, &v); err != nil {
			return fmt.Errorf("datavalue (%s): %w", typ, err)
		}
		out.Text, out.Language = v.Text, v.Language
	case TypeQuantity:
		v := struct {
			Amount string `json:"amount"`
		}{}
		if err := json.Unmarshal(raw.Value, &v); err != nil {
			return fmt.Errorf("datavalue (%s): %w", typ, err)
		}
		out.Amount = v.Amount
	}

	*dv = out
	return nil
}

// guess type of untyped datavalue.
//
// JSON strings are "string", objects with "id" or "numeric-id" are entity ids.
// Anything else is left untyped.
func inferType(value []byte) string {
	v := bytes.TrimSpace(value)
	if len(v) == 0 {
		return ""
	}
	switch v[0] {
	case '"':
		return TypeString
	case '{':
		probe := struct {
			ID        *string `json:"id"`
			NumericID *int64  `json:"numeric-id"`
			Time      *string `json:"time"`
			Text      *string `json:"text"`
		}{}
		if err := json.Unmarshal(v, &probe); err != nil {
			return ""
		}
		switch {
		case probe.ID != nil || probe.NumericID != nil:
			return TypeEntityID
		case probe.Time != nil:
			return TypeTime
		case probe.Text != nil:
			return TypeMonolingualText
		}
	}
	return ""
}

func isEmptyArray(b []byte) bool {
	v := bytes.TrimSpace(b)
	if len(v) < 2 || v[0] != '[' {
		return false
	}
	return len(bytes.TrimSpace(v[1:len(v)-1])) == 0 && v[len(v)-1] == ']'
}
