// Package body renders request bodies as wget arguments.
package body

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studiowebux/shellwget/internal/sanitize"
	"github.com/studiowebux/shellwget/internal/types"
)

// Render returns the body lines of a wget snippet, each prefixed with indent and
// terminated by a line continuation. It returns an empty string when there is
// nothing to send.
func Render(b *types.Body, trim bool, indent string) string {
	if b == nil || b.Disabled {
		return ""
	}

	switch b.Mode {
	case types.BodyModeRaw:
		if b.Raw == "" {
			return ""
		}
		return bodyData(indent, sanitize.Sanitize(b.Raw, sanitize.Raw, trim))
	case types.BodyModeURLEncoded:
		return params(b.URLEncoded, sanitize.URLEncoded, trim, indent)
	case types.BodyModeFormData:
		// wget cannot send multipart bodies, form fields go out urlencoded
		return params(b.FormData, sanitize.FormData, trim, indent)
	case types.BodyModeFile:
		if b.File == nil || b.File.Src == "" {
			return ""
		}
		return fmt.Sprintf("%s--body-file='%s' \\\n", indent, sanitize.Sanitize(b.File.Src, sanitize.File, trim))
	case types.BodyModeGraphQL:
		if b.GraphQL == nil {
			return ""
		}
		return bodyData(indent, sanitize.Sanitize(graphQLPayload(b.GraphQL), sanitize.Raw, trim))
	default:
		return ""
	}
}

func bodyData(indent, data string) string {
	return fmt.Sprintf("%s--body-data '%s' \\\n", indent, data)
}

// params joins the enabled text params as k=v pairs. File-typed form fields are skipped.
func params(list []types.Param, mode sanitize.Mode, trim bool, indent string) string {
	var pairs []string
	for _, p := range list {
		if p.Disabled || p.Type == "file" {
			continue
		}
		pairs = append(pairs, sanitize.Sanitize(p.Key, mode, trim)+"="+sanitize.Sanitize(p.Value, mode, trim))
	}
	if len(pairs) == 0 {
		return ""
	}
	return bodyData(indent, strings.Join(pairs, "&"))
}

// graphQLPayload builds the JSON document sent for a GraphQL body.
// Variables that are empty or not a JSON object become {}.
func graphQLPayload(g *types.GraphQL) string {
	variables := map[string]any{}
	if strings.TrimSpace(g.Variables) != "" {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(g.Variables), &parsed); err == nil && parsed != nil {
			variables = parsed
		}
	}

	payload := struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}{
		Query:     g.Query,
		Variables: variables,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		panic(fmt.Sprintf("body: failed to encode graphql payload: %v", err))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
