package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/studiowebux/shellwget/internal/types"
)

func TestResolve(t *testing.T) {
	vr := NewVariableResolver(
		map[string]string{"host": "cli.example.com", "token": "abc"},
		map[string]string{"host": "file.example.com", "version": "v2"},
		map[string]string{"HOME": "/home/john"},
	)

	tests := []struct {
		input    string
		expected string
	}{
		{"https://{{host}}/{{version}}", "https://cli.example.com/v2"},
		{"Bearer {{ token }}", "Bearer abc"},
		{"{{env.HOME}}/data", "/home/john/data"},
		{"{{missing}} and {{env.NOPE}}", "{{missing}} and {{env.NOPE}}"},
		{"no placeholders", "no placeholders"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := vr.Resolve(tt.input); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}

	if diff := cmp.Diff([]string{"missing", "env.NOPE"}, vr.Unresolved()); diff != "" {
		t.Errorf("unresolved mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveRequest(t *testing.T) {
	vr := NewVariableResolver(map[string]string{"id": "42", "name": "john"}, nil, nil)

	req := &types.Request{
		Name:    "get",
		Method:  "POST",
		URL:     "https://example.com/users/{{id}}",
		Headers: types.HeaderList{{Key: "X-User", Value: "{{name}}", Disabled: true}},
		Body: &types.Body{
			Mode:       types.BodyModeURLEncoded,
			URLEncoded: []types.Param{{Key: "user", Value: "{{name}}"}},
		},
	}

	resolved := vr.ResolveRequest(req)

	expected := &types.Request{
		Name:    "get",
		Method:  "POST",
		URL:     "https://example.com/users/42",
		Headers: types.HeaderList{{Key: "X-User", Value: "john", Disabled: true}},
		Body: &types.Body{
			Mode:       types.BodyModeURLEncoded,
			URLEncoded: []types.Param{{Key: "user", Value: "john"}},
		},
	}
	if diff := cmp.Diff(expected, resolved); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}

	// the input is not modified
	if req.URL != "https://example.com/users/{{id}}" || req.Body.URLEncoded[0].Value != "{{name}}" {
		t.Errorf("ResolveRequest modified its input: %+v", req)
	}
}

func TestParseVarFlags(t *testing.T) {
	vars, err := ParseVarFlags([]string{"a=1", "b=x=y", "empty="})
	if err != nil {
		t.Fatalf("ParseVarFlags() error = %v", err)
	}
	expected := map[string]string{"a": "1", "b": "x=y", "empty": ""}
	if diff := cmp.Diff(expected, vars); diff != "" {
		t.Errorf("vars mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseVarFlags([]string{"novalue"}); err == nil {
		t.Error("expected an error for a pair without '='")
	}
	if _, err := ParseVarFlags([]string{"=value"}); err == nil {
		t.Error("expected an error for an empty key")
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nHOST=example.com\nexport TOKEN=\"abc def\"\nQUOTED='x'\nmalformed\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	vars, err := LoadEnvFile(path)
	if err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	expected := map[string]string{"HOST": "example.com", "TOKEN": "abc def", "QUOTED": "x"}
	if diff := cmp.Diff(expected, vars); diff != "" {
		t.Errorf("vars mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadEnvFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
