package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalJSON accepts either a list of header objects or a name -> value object.
// Object keys keep their document order.
func (h *HeaderList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*h = nil
		return nil
	}

	// Try to unmarshal as a list first
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []Header
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("failed to parse header list: %w", err)
		}
		*h = list
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to parse headers: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("headers must be either a list or an object")
	}

	var list HeaderList
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to parse headers: %w", err)
		}
		key, _ := keyTok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("header %q must be a string: %w", key, err)
		}
		list = append(list, Header{Key: key, Value: value})
	}

	*h = list
	return nil
}

// UnmarshalYAML accepts either a sequence of header mappings or a name -> value mapping
func (h *HeaderList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []Header
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("failed to parse header list: %w", err)
		}
		*h = list
		return nil
	case yaml.MappingNode:
		list := make(HeaderList, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var value string
			if err := node.Content[i+1].Decode(&value); err != nil {
				return fmt.Errorf("header %q must be a string: %w", node.Content[i].Value, err)
			}
			list = append(list, Header{Key: node.Content[i].Value, Value: value})
		}
		*h = list
		return nil
	}

	return errors.New("headers must be either a list or a mapping")
}

// bodyFields avoids recursion into Body's own unmarshalers
type bodyFields Body

// UnmarshalJSON accepts a plain string (raw body) or a structured body object
func (b *Body) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*b = Body{Mode: BodyModeRaw, Raw: str}
		return nil
	}

	var fields bodyFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return errors.New("body must be either a string or a body object")
	}
	*b = Body(fields)
	b.inferMode()
	return nil
}

// UnmarshalYAML accepts a plain string (raw body) or a structured body mapping
func (b *Body) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*b = Body{Mode: BodyModeRaw, Raw: node.Value}
		return nil
	}

	var fields bodyFields
	if err := node.Decode(&fields); err != nil {
		return errors.New("body must be either a string or a body mapping")
	}
	*b = Body(fields)
	b.inferMode()
	return nil
}

// inferMode fills Mode when a document only sets the mode-specific field
func (b *Body) inferMode() {
	if b.Mode != "" {
		return
	}
	switch {
	case b.GraphQL != nil:
		b.Mode = BodyModeGraphQL
	case b.File != nil:
		b.Mode = BodyModeFile
	case len(b.FormData) > 0:
		b.Mode = BodyModeFormData
	case len(b.URLEncoded) > 0:
		b.Mode = BodyModeURLEncoded
	default:
		b.Mode = BodyModeRaw
	}
}
