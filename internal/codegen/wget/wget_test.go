package wget

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/studiowebux/shellwget/internal/types"
)

func getRequest() *types.Request {
	return &types.Request{Method: "GET", URL: "http://example.com"}
}

func convert(t *testing.T, req *types.Request, opts types.ConvertOptions) string {
	t.Helper()

	calls := 0
	var snippet string
	New().ConvertWithOptions(req, opts, func(err error, s string) {
		calls++
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snippet = s
	})
	if calls != 1 {
		t.Fatalf("callback invoked %d times, want 1", calls)
	}
	return snippet
}

func TestConvertDefaults(t *testing.T) {
	var snippet string
	New().Convert(getRequest(), func(err error, s string) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snippet = s
	})

	expected := "wget --no-check-certificate --quiet \\\n" +
		"    --method GET \\\n" +
		"    --header '' \\\n" +
		"    --output-document=shellWget.txt \\\n" +
		"    - 'http://example.com'"

	if diff := cmp.Diff(expected, snippet); diff != "" {
		t.Errorf("snippet mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertFullRequest(t *testing.T) {
	req := &types.Request{
		Method: "POST",
		URL:    "https://postman-echo.com/post?a=1",
		Headers: types.HeaderList{
			{Key: "Content-Type", Value: "application/json"},
			{Key: "X-Debug", Value: "1", Disabled: true},
			{Key: "X-Quote", Value: "it's"},
		},
		Body: &types.Body{Mode: types.BodyModeRaw, Raw: `{"a": 1}`},
	}
	opts := types.ConvertOptions{
		IndentType:     types.IndentTab,
		IndentCount:    2,
		RequestTimeout: 2500,
		FollowRedirect: types.Bool(false),
	}

	expected := "wget --no-check-certificate --quiet \\\n" +
		"\t\t--method POST \\\n" +
		"\t\t--timeout=2 \\\n" +
		"\t\t--max-redirect=0 \\\n" +
		"\t\t--header 'Content-Type: application/json' \\\n" +
		"\t\t--header 'X-Quote: it'\\''s' \\\n" +
		"\t\t--body-data '{\"a\": 1}' \\\n" +
		"\t\t--output-document=shellWget.txt \\\n" +
		"\t\t- 'https://postman-echo.com/post?a=1'"

	if diff := cmp.Diff(expected, convert(t, req, opts)); diff != "" {
		t.Errorf("snippet mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertPrefixAndSuffix(t *testing.T) {
	requests := []*types.Request{
		getRequest(),
		{Method: "DELETE", URL: "https://api.example.com/users/1"},
		{Method: "PUT", URL: "https://example.com/x?y=z", Body: &types.Body{Mode: types.BodyModeRaw, Raw: "data"}},
	}

	for _, req := range requests {
		snippet := convert(t, req, types.ConvertOptions{})
		if !strings.HasPrefix(snippet, "wget --no-check-certificate --quiet \\\n") {
			t.Errorf("snippet for %s does not start with the preamble: %q", req.URL, snippet)
		}
		if !strings.HasSuffix(snippet, "- '"+req.URL+"'") {
			t.Errorf("snippet for %s does not end with the URL: %q", req.URL, snippet)
		}
	}
}

func TestConvertIsIdempotent(t *testing.T) {
	req := &types.Request{
		Method:  "POST",
		URL:     "https://example.com",
		Headers: types.HeaderList{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}},
		Body:    &types.Body{Mode: types.BodyModeURLEncoded, URLEncoded: []types.Param{{Key: "k", Value: "v"}}},
	}
	opts := types.ConvertOptions{RequestTimeout: 1000}

	first := convert(t, req, opts)
	second := convert(t, req, opts)
	if first != second {
		t.Errorf("conversions differ:\n%q\n%q", first, second)
	}
}

func TestIndentation(t *testing.T) {
	tests := []struct {
		name     string
		opts     types.ConvertOptions
		expected string
	}{
		{"default", types.ConvertOptions{}, "    "},
		{"space explicit", types.ConvertOptions{IndentType: types.IndentSpace}, "    "},
		{"space three", types.ConvertOptions{IndentType: types.IndentSpace, IndentCount: 3}, "   "},
		{"tab default", types.ConvertOptions{IndentType: types.IndentTab}, "\t"},
		{"tab two", types.ConvertOptions{IndentType: types.IndentTab, IndentCount: 2}, "\t\t"},
		{"unknown type is space", types.ConvertOptions{IndentType: "dots", IndentCount: 2}, "  "},
		{"negative clamps", types.ConvertOptions{IndentCount: -3}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Indentation(tt.opts)
			if got != tt.expected {
				t.Errorf("Indentation() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestContinuationLinesAreIndented(t *testing.T) {
	tests := []struct {
		name   string
		opts   types.ConvertOptions
		prefix string
	}{
		{"two tabs", types.ConvertOptions{IndentType: types.IndentTab, IndentCount: 2}, "\t\t"},
		{"three spaces", types.ConvertOptions{IndentType: types.IndentSpace, IndentCount: 3}, "   "},
	}

	req := &types.Request{
		Method:  "POST",
		URL:     "https://example.com",
		Headers: types.HeaderList{{Key: "Accept", Value: "*/*"}},
		Body:    &types.Body{Mode: types.BodyModeRaw, Raw: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(convert(t, req, tt.opts), "\n")
			for _, line := range lines[1:] {
				if !strings.HasPrefix(line, tt.prefix) {
					t.Errorf("line %q does not start with %q", line, tt.prefix)
				}
				rest := strings.TrimPrefix(line, tt.prefix)
				if strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, "\t") {
					t.Errorf("line %q has extra indentation", line)
				}
			}
		})
	}
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		name     string
		timeout  int
		expected string
	}{
		{"floor of 1.5s", 1500, "--timeout=1 "},
		{"exact seconds", 3000, "--timeout=3 "},
		{"below one second", 999, "--timeout=0 "},
		{"zero", 0, ""},
		{"negative", -100, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snippet := convert(t, getRequest(), types.ConvertOptions{RequestTimeout: tt.timeout})
			if tt.expected == "" {
				if strings.Contains(snippet, "--timeout=") {
					t.Errorf("snippet should not contain a timeout: %q", snippet)
				}
				return
			}
			if !strings.Contains(snippet, tt.expected) {
				t.Errorf("snippet should contain %q: %q", tt.expected, snippet)
			}
		})
	}
}

func TestFollowRedirect(t *testing.T) {
	tests := []struct {
		name     string
		follow   *bool
		disabled bool
	}{
		{"omitted", nil, false},
		{"true", types.Bool(true), false},
		{"false", types.Bool(false), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snippet := convert(t, getRequest(), types.ConvertOptions{FollowRedirect: tt.follow})
			if got := strings.Contains(snippet, "--max-redirect=0"); got != tt.disabled {
				t.Errorf("contains --max-redirect=0 = %v, want %v", got, tt.disabled)
			}
		})
	}
}

func TestHeaders(t *testing.T) {
	req := getRequest()
	req.Headers = types.HeaderList{
		{Key: "Accept", Value: "application/json"},
		{Key: "X-Debug", Value: "1", Disabled: true},
	}

	snippet := convert(t, req, types.ConvertOptions{})
	if n := strings.Count(snippet, "--header 'Accept: application/json' \\\n"); n != 1 {
		t.Errorf("Accept header appears %d times, want 1", n)
	}
	if strings.Contains(snippet, "X-Debug") {
		t.Errorf("disabled header rendered: %q", snippet)
	}
	if strings.Contains(snippet, "--header ''") {
		t.Errorf("empty header rendered next to real headers: %q", snippet)
	}
}

func TestHeadersAllDisabled(t *testing.T) {
	req := getRequest()
	req.Headers = types.HeaderList{{Key: "X-Debug", Value: "1", Disabled: true}}

	snippet := convert(t, req, types.ConvertOptions{})
	if n := strings.Count(snippet, "--header ''"); n != 1 {
		t.Errorf("empty header appears %d times, want 1", n)
	}
}

func TestDuplicateHeadersCollapse(t *testing.T) {
	req := getRequest()
	req.Headers = types.HeaderList{
		{Key: "Accept", Value: "text/html"},
		{Key: "X-Trace", Value: "abc"},
		{Key: "Accept", Value: "application/json"},
	}

	snippet := convert(t, req, types.ConvertOptions{})
	expected := "    --header 'Accept: application/json' \\\n    --header 'X-Trace: abc' \\\n"
	if !strings.Contains(snippet, expected) {
		t.Errorf("snippet should contain %q: %q", expected, snippet)
	}
}

func TestBodyTrim(t *testing.T) {
	req := &types.Request{
		Method: "POST",
		URL:    "https://example.com",
		Body:   &types.Body{Mode: types.BodyModeRaw, Raw: "  padded  "},
	}

	trimmed := convert(t, req, types.ConvertOptions{RequestBodyTrim: true})
	if !strings.Contains(trimmed, "--body-data 'padded' \\\n") {
		t.Errorf("trimmed body not found: %q", trimmed)
	}

	untrimmed := convert(t, req, types.ConvertOptions{})
	if !strings.Contains(untrimmed, "--body-data '  padded  ' \\\n") {
		t.Errorf("untrimmed body not found: %q", untrimmed)
	}
}

func TestConvertNilCallbackPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a nil callback")
		}
	}()
	New().Convert(getRequest(), nil)
}

func TestConvertConcurrent(t *testing.T) {
	g := New()
	expected := Generate(getRequest(), types.ConvertOptions{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Convert(getRequest(), func(err error, s string) {
				if s != expected {
					t.Errorf("concurrent conversion differs: %q", s)
				}
			})
		}()
	}
	wg.Wait()
}

func TestOptions(t *testing.T) {
	g := New()

	expected := []struct {
		id    string
		typ   string
		value any
	}{
		{"indentCount", "integer", 4},
		{"indentType", "string", "space"},
		{"requestTimeout", "integer", 0},
		{"followRedirect", "boolean", true},
		{"requestBodyTrim", "boolean", false},
	}

	opts := g.Options()
	if len(opts) != len(expected) {
		t.Fatalf("Options() returned %d descriptors, want %d", len(opts), len(expected))
	}
	for i, e := range expected {
		if opts[i].ID != e.id || opts[i].Type != e.typ || opts[i].Default != e.value {
			t.Errorf("descriptor %d = %+v, want id=%s type=%s default=%v", i, opts[i], e.id, e.typ, e.value)
		}
	}

	descriptions := map[string]string{
		"indentCount":     "Integer denoting count of indentation required",
		"indentType":      "String denoting type of indentation for code snippet. eg: 'space', 'tab'",
		"requestTimeout":  "Integer denoting time after which the request will bail out in milliseconds",
		"followRedirect":  "Boolean denoting whether or not to automatically follow redirects",
		"requestBodyTrim": "Boolean denoting whether to trim request body fields",
	}
	for _, o := range opts {
		if o.Description != descriptions[o.ID] {
			t.Errorf("%s description = %q, want %q", o.ID, o.Description, descriptions[o.ID])
		}
	}

	// mutating a result must not leak into the next call
	opts[0].Name = "changed"
	opts[0].Default = 8
	again := g.Options()
	if again[0].Name != "Indent Count" || again[0].Default != 4 {
		t.Errorf("Options() is not stable across calls: %+v", again[0])
	}
}

func TestIdentity(t *testing.T) {
	g := New()
	if g.Language() != "shell" || g.Variant() != "wget" {
		t.Errorf("identity = %s/%s, want shell/wget", g.Language(), g.Variant())
	}
}
