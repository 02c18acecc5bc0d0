package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studiowebux/shellwget/internal/types"
)

// HARFile represents the HAR file structure
type HARFile struct {
	Log HARLog `json:"log"`
}

// HARLog represents the log section of HAR
type HARLog struct {
	Version string     `json:"version"`
	Entries []HAREntry `json:"entries"`
}

// HAREntry represents a single recorded exchange; only the request is used
type HAREntry struct {
	Request HARRequest `json:"request"`
}

// HARRequest represents the request part of an entry
type HARRequest struct {
	Method   string       `json:"method"`
	URL      string       `json:"url"`
	Headers  []HARHeader  `json:"headers"`
	PostData *HARPostData `json:"postData,omitempty"`
}

// HARHeader represents a single header
type HARHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HARPostData represents POST data
type HARPostData struct {
	MimeType string     `json:"mimeType"`
	Text     string     `json:"text"`
	Params   []HARParam `json:"params,omitempty"`
}

// HARParam represents a form parameter
type HARParam struct {
	Name     string `json:"name"`
	Value    string `json:"value,omitempty"`
	FileName string `json:"fileName,omitempty"`
}

// isHAR reports whether data looks like a HAR archive
func isHAR(data []byte) bool {
	var probe struct {
		Log *struct {
			Entries json.RawMessage `json:"entries"`
		} `json:"log"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Log != nil && len(probe.Log.Entries) > 0
}

// ParseHAR converts the HTTP(S) entries of a HAR archive into requests
func ParseHAR(data []byte) ([]types.Request, error) {
	var har HARFile
	if err := json.Unmarshal(data, &har); err != nil {
		return nil, fmt.Errorf("failed to parse HAR file: %w", err)
	}

	var requests []types.Request
	for _, entry := range har.Log.Entries {
		req := entry.Request

		// Skip non-HTTP(S) requests
		if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
			continue
		}

		requests = append(requests, harToRequest(req))
	}

	return requests, nil
}

func harToRequest(req HARRequest) types.Request {
	out := types.Request{
		Name:   fmt.Sprintf("%s %s", req.Method, extractPath(req.URL)),
		Method: strings.ToUpper(req.Method),
		URL:    req.URL,
	}

	for _, h := range req.Headers {
		// Skip HTTP/2 pseudo-headers
		if strings.HasPrefix(h.Name, ":") {
			continue
		}
		out.Headers = append(out.Headers, types.Header{Key: h.Name, Value: h.Value})
	}

	if pd := req.PostData; pd != nil {
		switch {
		case len(pd.Params) > 0 && strings.HasPrefix(pd.MimeType, "multipart/form-data"):
			out.Body = &types.Body{Mode: types.BodyModeFormData, FormData: harParams(pd.Params)}
		case len(pd.Params) > 0:
			out.Body = &types.Body{Mode: types.BodyModeURLEncoded, URLEncoded: harParams(pd.Params)}
		case pd.Text != "":
			out.Body = &types.Body{Mode: types.BodyModeRaw, Raw: pd.Text}
		}
	}

	return out
}

func harParams(params []HARParam) []types.Param {
	out := make([]types.Param, 0, len(params))
	for _, p := range params {
		param := types.Param{Key: p.Name, Value: p.Value, Type: "text"}
		if p.FileName != "" {
			param.Type = "file"
			param.Src = p.FileName
		}
		out = append(out, param)
	}
	return out
}

// extractPath extracts the path from a URL, without query or fragment
func extractPath(urlStr string) string {
	parts := strings.SplitN(urlStr, "://", 2)
	if len(parts) != 2 {
		return "/"
	}

	pathStart := strings.Index(parts[1], "/")
	if pathStart == -1 {
		return "/"
	}

	path := parts[1][pathStart:]
	if idx := strings.IndexAny(path, "?#"); idx != -1 {
		path = path[:idx]
	}
	return path
}
