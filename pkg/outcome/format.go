package outcome

import (
	"encoding/json"
	"fmt"
)

type document struct {
	Success bool `json:"success" yaml:"success"`
	Value   any  `json:"value,omitempty" yaml:"value,omitempty"`
	Error   any  `json:"error,omitempty" yaml:"error,omitempty"`
}

// String renders Success(v) or Failure(e); unit payloads render as the bare
// word and the zero Outcome as Unset.
func (o Outcome[T, E]) String() string {
	switch o.state {
	case succeeded:
		if isUnit(o.value) {
			return "Success"
		}
		return fmt.Sprintf("Success(%v)", o.value)
	case failed:
		if isUnit(o.err) {
			return "Failure"
		}
		return fmt.Sprintf("Failure(%v)", o.err)
	default:
		return "Unset"
	}
}

func (o Outcome[T, E]) toDocument() (document, error) {
	switch o.state {
	case succeeded:
		doc := document{Success: true}
		if !isUnit(o.value) {
			doc.Value = o.value
		}
		return doc, nil
	case failed:
		doc := document{Success: false}
		if !isUnit(o.err) {
			doc.Error = payload(o.err)
		}
		return doc, nil
	default:
		return document{}, misuse("Marshal", o.state)
	}
}

// error values rarely have exported fields, so encode their message instead.
func payload(v any) any {
	if err, ok := v.(error); ok && !isNil(err) {
		return err.Error()
	}
	return v
}

// MarshalJSON encodes o as {"success":true,"value":...} or
// {"success":false,"error":...}. Unit payloads omit their key.
func (o Outcome[T, E]) MarshalJSON() ([]byte, error) {
	doc, err := o.toDocument()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// MarshalYAML produces the same document shape as MarshalJSON.
func (o Outcome[T, E]) MarshalYAML() (interface{}, error) {
	doc, err := o.toDocument()
	if err != nil {
		return nil, err
	}
	return doc, nil
}
