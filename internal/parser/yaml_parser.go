package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/studiowebux/shellwget/internal/types"
	"gopkg.in/yaml.v3"
)

// parseJSON parses JSON format
func parseJSON(data []byte) ([]types.Request, error) {
	trimmed := bytes.TrimSpace(data)

	// Try to unmarshal as array first
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var requests []types.Request
		if err := json.Unmarshal(trimmed, &requests); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return requests, nil
	}

	var request types.Request
	if err := json.Unmarshal(trimmed, &request); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return []types.Request{request}, nil
}

// parseYAML parses YAML format (which also handles JSON)
func parseYAML(data []byte) ([]types.Request, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var requests []types.Request
		if err := root.Decode(&requests); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		return requests, nil
	}

	var request types.Request
	if err := root.Decode(&request); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return []types.Request{request}, nil
}
