// Package filter narrows the requests of a parsed file down to the ones to convert.
package filter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmespath/go-jmespath"
	"github.com/sahilm/fuzzy"
	"github.com/studiowebux/shellwget/internal/types"
)

// ErrNoMatch is returned when a selection matches no request
var ErrNoMatch = errors.New("no request matches")

// DisplayName is the name used to match and label a request: its name, or "METHOD URL"
func DisplayName(req types.Request) string {
	if req.Name != "" {
		return req.Name
	}
	return req.Method + " " + req.URL
}

// requestNames adapts a request list to fuzzy.Source
type requestNames []types.Request

func (r requestNames) String(i int) string { return DisplayName(r[i]) }

func (r requestNames) Len() int { return len(r) }

// ByName selects requests by name. A case-insensitive exact match wins,
// otherwise every fuzzy match is returned, best first.
func ByName(requests []types.Request, pattern string) ([]types.Request, error) {
	if pattern == "" {
		return requests, nil
	}

	for _, req := range requests {
		if strings.EqualFold(DisplayName(req), pattern) {
			return []types.Request{req}, nil
		}
	}

	matches := fuzzy.FindFrom(pattern, requestNames(requests))
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w name %q", ErrNoMatch, pattern)
	}

	selected := make([]types.Request, 0, len(matches))
	for _, m := range matches {
		selected = append(selected, requests[m.Index])
	}
	return selected, nil
}

// Apply evaluates a JMESPath expression against the JSON view of the request
// list, e.g. [?method=='POST'] or [?contains(url, 'users')]. The result must be
// a list of requests or a single request.
func Apply(requests []types.Request, expression string) ([]types.Request, error) {
	if expression == "" {
		return requests, nil
	}

	jp, err := jmespath.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	data, err := toGeneric(requests)
	if err != nil {
		return nil, err
	}

	result, err := jp.Search(data)
	if err != nil {
		return nil, fmt.Errorf("JMESPath search failed: %w", err)
	}

	selected, err := fromGeneric(result)
	if err != nil {
		return nil, fmt.Errorf("expression '%s' did not select requests: %w", expression, err)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w expression '%s'", ErrNoMatch, expression)
	}
	return selected, nil
}

// IsValidJMESPath checks if an expression is valid JMESPath syntax
func IsValidJMESPath(expression string) bool {
	_, err := jmespath.Compile(expression)
	return err == nil
}

func toGeneric(requests []types.Request) (any, error) {
	raw, err := json.Marshal(requests)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requests: %w", err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requests: %w", err)
	}
	return data, nil
}

func fromGeneric(result any) ([]types.Request, error) {
	switch result.(type) {
	case nil:
		return nil, nil
	case []any, map[string]any:
	default:
		return nil, fmt.Errorf("result is a %T, not a request", result)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	if _, ok := result.(map[string]any); ok {
		var req types.Request
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, err
		}
		return []types.Request{req}, nil
	}

	var selected []types.Request
	if err := json.Unmarshal(raw, &selected); err != nil {
		return nil, err
	}
	return selected, nil
}
