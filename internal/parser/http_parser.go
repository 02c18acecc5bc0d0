package parser

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/studiowebux/shellwget/internal/types"
)

var validMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
	"PATCH": true, "HEAD": true, "OPTIONS": true, "TRACE": true,
	"CONNECT": true,
}

// httpSection tracks where the scanner is inside a request
type httpSection int

const (
	sectionPreamble httpSection = iota // before the request line
	sectionHeaders
	sectionBody
)

// ParseHTTP parses .http content.
//
//	### Optional name
//	# @name other-name
//	POST https://example.com/users
//	Content-Type: application/json
//	# X-Debug: 1            <- disabled header
//
//	{"name": "John"}
//
// A request line before the first ### starts an unnamed request.
func ParseHTTP(r io.Reader) ([]types.Request, error) {
	var requests []types.Request
	var current *types.Request
	var bodyLines []string
	section := sectionPreamble

	flush := func() {
		if current == nil {
			return
		}
		if current.Method != "" {
			finishBody(current, bodyLines)
			requests = append(requests, *current)
		}
		current = nil
		bodyLines = nil
		section = sectionPreamble
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		// New request separator
		if strings.HasPrefix(line, "###") {
			flush()
			current = &types.Request{
				Name: strings.TrimSpace(strings.TrimPrefix(line, "###")),
			}
			continue
		}

		switch section {
		case sectionPreamble:
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if isComment(trimmed) {
				if name, ok := nameAnnotation(trimmed); ok {
					if current == nil {
						current = &types.Request{}
					}
					current.Name = name
				}
				continue
			}

			method, target, ok := parseRequestLine(trimmed)
			if !ok {
				return nil, fmt.Errorf("invalid request line: %q", line)
			}
			if current == nil {
				current = &types.Request{}
			}
			current.Method = method
			current.URL = target
			section = sectionHeaders

		case sectionHeaders:
			// Empty line after headers starts body
			if strings.TrimSpace(line) == "" {
				section = sectionBody
				continue
			}

			disabled := false
			headerLine := line
			if rest, ok := strings.CutPrefix(line, "#"); ok {
				if _, ok := nameAnnotation(strings.TrimSpace(line)); ok {
					continue
				}
				headerLine = strings.TrimSpace(rest)
				disabled = true
			}

			key, value, ok := splitHeader(headerLine)
			if !ok {
				if disabled {
					// plain comment inside the header block
					continue
				}
				// Looks like body content, not a header
				section = sectionBody
				bodyLines = append(bodyLines, line)
				continue
			}
			current.Headers = append(current.Headers, types.Header{Key: key, Value: value, Disabled: disabled})

		case sectionBody:
			bodyLines = append(bodyLines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	// Save last request
	flush()

	return requests, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//")
}

// nameAnnotation reads "# @name value" and "// @name value"
func nameAnnotation(line string) (string, bool) {
	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(line, "//"), "#"))
	name, ok := strings.CutPrefix(line, "@name ")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(name), true
}

// parseRequestLine reads "METHOD URL [HTTP/x]"; a bare URL means GET
func parseRequestLine(line string) (string, string, bool) {
	parts := strings.Fields(line)
	if len(parts) == 1 && looksLikeURL(parts[0]) {
		return "GET", parts[0], true
	}
	if len(parts) < 2 {
		return "", "", false
	}

	method := strings.ToUpper(parts[0])
	if !validMethods[method] {
		return "", "", false
	}
	return method, parts[1], true
}

func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "{{")
}

// splitHeader splits "Key: Value". Header names must not be empty, indented
// or contain spaces, quotes or brackets.
func splitHeader(line string) (string, string, bool) {
	if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
		return "", "", false
	}

	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, " \t{[\"'") {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}

// finishBody attaches the collected body lines to req. Form bodies become urlencoded params.
func finishBody(req *types.Request, lines []string) {
	// Trailing blank lines separate requests, they are not content
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return
	}

	raw := strings.Join(lines, "\n")
	if isFormContentType(req.Headers) {
		if params, ok := parseFormBody(raw); ok {
			req.Body = &types.Body{Mode: types.BodyModeURLEncoded, URLEncoded: params}
			return
		}
	}
	req.Body = &types.Body{Mode: types.BodyModeRaw, Raw: raw}
}

func isFormContentType(headers types.HeaderList) bool {
	for _, h := range headers {
		if !h.Disabled && strings.EqualFold(h.Key, "Content-Type") &&
			strings.HasPrefix(strings.ToLower(h.Value), "application/x-www-form-urlencoded") {
			return true
		}
	}
	return false
}

// parseFormBody splits a&b=c style bodies, keeping field order.
// Lines are joined first so long forms can be wrapped.
func parseFormBody(raw string) ([]types.Param, bool) {
	var joined strings.Builder
	for _, line := range strings.Split(raw, "\n") {
		joined.WriteString(strings.TrimSpace(line))
	}

	var params []types.Param
	for _, pair := range strings.Split(joined.String(), "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, false
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, false
		}
		params = append(params, types.Param{Key: k, Value: v})
	}
	return params, len(params) > 0
}
