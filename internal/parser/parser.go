package parser

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/studiowebux/shellwget/internal/types"
)

// Supported request file formats
const (
	FormatHTTP    = "http"
	FormatYAML    = "yaml"
	FormatJSON    = "json"
	FormatPostman = "postman"
	FormatHAR     = "har"
)

// ErrNoRequests is returned when a file parses but holds no request
var ErrNoRequests = errors.New("no requests found")

// DetectFormat detects the format of a request file from its extension and content
func DetectFormat(filePath string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filePath))
	content := strings.TrimSpace(string(data))

	switch ext {
	case ".har":
		return FormatHAR
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return detectJSON(data)
	}

	// .http and unknown extensions: peek at the content
	if strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[") {
		return detectJSON(data)
	}
	if strings.HasPrefix(content, "---") {
		return FormatYAML
	}
	return FormatHTTP
}

func detectJSON(data []byte) string {
	switch {
	case isHAR(data):
		return FormatHAR
	case isPostmanCollection(data):
		return FormatPostman
	default:
		return FormatJSON
	}
}

// Parse is the main entry point for parsing any supported file format
func Parse(filePath string) ([]types.Request, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseData(filePath, data)
}

// ParseData parses already loaded content. name drives format detection
// by extension and prefixes errors; it may be empty for stdin.
func ParseData(name string, data []byte) ([]types.Request, error) {
	if name == "" {
		name = "stdin"
	}

	var (
		requests []types.Request
		err      error
	)
	switch format := DetectFormat(name, data); format {
	case FormatHAR:
		requests, err = ParseHAR(data)
	case FormatPostman:
		requests, err = ParsePostmanCollection(data)
	case FormatJSON:
		requests, err = parseJSON(data)
	case FormatYAML:
		requests, err = parseYAML(data)
	case FormatHTTP:
		requests, err = ParseHTTP(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported file format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if len(requests) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoRequests)
	}

	for i := range requests {
		if requests[i].Method == "" {
			requests[i].Method = "GET"
		}
		requests[i].Method = strings.ToUpper(requests[i].Method)
	}

	return requests, nil
}
