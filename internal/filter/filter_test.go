package filter

import (
	"errors"
	"testing"

	"github.com/studiowebux/shellwget/internal/types"
)

func sampleRequests() []types.Request {
	return []types.Request{
		{Name: "create-user", Method: "POST", URL: "https://api.example.com/users"},
		{Name: "list-users", Method: "GET", URL: "https://api.example.com/users"},
		{Name: "delete-order", Method: "DELETE", URL: "https://api.example.com/orders/1"},
		{Method: "GET", URL: "https://api.example.com/health",
			Headers: types.HeaderList{{Key: "Accept", Value: "application/json"}}},
	}
}

func names(reqs []types.Request) []string {
	var out []string
	for _, r := range reqs {
		out = append(out, DisplayName(r))
	}
	return out
}

func TestByName(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{"empty keeps all", "", []string{"create-user", "list-users", "delete-order", "GET https://api.example.com/health"}},
		{"exact case-insensitive", "LIST-USERS", []string{"list-users"}},
		{"fuzzy", "dlord", []string{"delete-order"}},
		{"unnamed by method and url", "GET https://api.example.com/health", []string{"GET https://api.example.com/health"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByName(sampleRequests(), tt.pattern)
			if err != nil {
				t.Fatalf("ByName() error = %v", err)
			}
			gotNames := names(got)
			if len(gotNames) != len(tt.expected) {
				t.Fatalf("ByName(%q) = %v, want %v", tt.pattern, gotNames, tt.expected)
			}
			for i := range gotNames {
				if gotNames[i] != tt.expected[i] {
					t.Errorf("ByName(%q) = %v, want %v", tt.pattern, gotNames, tt.expected)
					break
				}
			}
		})
	}
}

func TestByNameNoMatch(t *testing.T) {
	_, err := ByName(sampleRequests(), "zzz")
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("ByName() error = %v, want ErrNoMatch", err)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		expected   []string
	}{
		{"by method", "[?method=='GET']", []string{"list-users", "GET https://api.example.com/health"}},
		{"by url", "[?contains(url, 'orders')]", []string{"delete-order"}},
		{"single element", "[0]", []string{"create-user"}},
		{"by header", "[?headers[?key=='Accept']]", []string{"GET https://api.example.com/health"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(sampleRequests(), tt.expression)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			gotNames := names(got)
			if len(gotNames) != len(tt.expected) {
				t.Fatalf("Apply(%q) = %v, want %v", tt.expression, gotNames, tt.expected)
			}
			for i := range gotNames {
				if gotNames[i] != tt.expected[i] {
					t.Errorf("Apply(%q) = %v, want %v", tt.expression, gotNames, tt.expected)
					break
				}
			}
		})
	}
}

func TestApplyKeepsHeaders(t *testing.T) {
	got, err := Apply(sampleRequests(), "[3]")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(got[0].Headers) != 1 || got[0].Headers[0].Value != "application/json" {
		t.Errorf("headers = %+v, want Accept header kept", got[0].Headers)
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		noMatch    bool
	}{
		{"invalid expression", "[?method==", false},
		{"not requests", "[].method", false},
		{"empty result", "[?method=='PUT']", true},
		{"null result", "missing", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(sampleRequests(), tt.expression)
			if err == nil {
				t.Fatalf("Apply(%q) expected an error", tt.expression)
			}
			if got := errors.Is(err, ErrNoMatch); got != tt.noMatch {
				t.Errorf("errors.Is(err, ErrNoMatch) = %v, want %v (err: %v)", got, tt.noMatch, err)
			}
		})
	}
}

func TestIsValidJMESPath(t *testing.T) {
	if !IsValidJMESPath("[?method=='GET']") {
		t.Error("expected expression to be valid")
	}
	if IsValidJMESPath("[?") {
		t.Error("expected expression to be invalid")
	}
}
