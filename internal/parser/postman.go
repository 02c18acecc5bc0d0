package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studiowebux/shellwget/internal/types"
)

// PostmanCollection is the subset of a Postman v2.1 collection needed to build requests
type PostmanCollection struct {
	Info PostmanInfo   `json:"info"`
	Item []PostmanItem `json:"item"`
}

// PostmanInfo describes the collection
type PostmanInfo struct {
	Name   string `json:"name"`
	Schema string `json:"schema"`
}

// PostmanItem is either a request or a folder of items
type PostmanItem struct {
	Name    string          `json:"name"`
	Request *PostmanRequest `json:"request,omitempty"`
	Item    []PostmanItem   `json:"item,omitempty"`
}

// PostmanRequest mirrors a collection request; URL is a string or an object with "raw"
type PostmanRequest struct {
	Method string          `json:"method"`
	URL    json.RawMessage `json:"url"`
	Header []types.Header  `json:"header,omitempty"`
	Body   *postmanBody    `json:"body,omitempty"`
}

// postmanBody keeps file and graphql shapes that differ from types.Body
type postmanBody struct {
	Mode       string          `json:"mode"`
	Raw        string          `json:"raw,omitempty"`
	URLEncoded []types.Param   `json:"urlencoded,omitempty"`
	FormData   []postmanParam  `json:"formdata,omitempty"`
	File       *types.File     `json:"file,omitempty"`
	GraphQL    *postmanGraphQL `json:"graphql,omitempty"`
	Disabled   bool            `json:"disabled,omitempty"`
}

// postmanParam is a form field; Src of a file field is a string or a list of strings
type postmanParam struct {
	Key      string          `json:"key"`
	Value    string          `json:"value,omitempty"`
	Type     string          `json:"type,omitempty"`
	Src      json.RawMessage `json:"src,omitempty"`
	Disabled bool            `json:"disabled,omitempty"`
}

func (p postmanParam) toParam() types.Param {
	param := types.Param{Key: p.Key, Value: p.Value, Type: p.Type, Disabled: p.Disabled}
	if len(p.Src) > 0 {
		var src string
		if err := json.Unmarshal(p.Src, &src); err == nil {
			param.Src = src
		} else {
			var list []string
			if err := json.Unmarshal(p.Src, &list); err == nil && len(list) > 0 {
				param.Src = list[0]
			}
		}
	}
	return param
}

// postmanGraphQL carries variables as a string in exports, but some tools emit an object
type postmanGraphQL struct {
	Query     string          `json:"query"`
	Variables json.RawMessage `json:"variables,omitempty"`
}

// isPostmanCollection reports whether data looks like a Postman collection
func isPostmanCollection(data []byte) bool {
	var probe struct {
		Info *struct {
			Schema string `json:"schema"`
		} `json:"info"`
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Info != nil && len(probe.Item) > 0
}

// ParsePostmanCollection flattens a collection into requests. Folder names
// prefix request names with "/".
func ParsePostmanCollection(data []byte) ([]types.Request, error) {
	var collection PostmanCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse Postman collection: %w", err)
	}

	var requests []types.Request
	if err := walkPostmanItems(collection.Item, "", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func walkPostmanItems(items []PostmanItem, prefix string, out *[]types.Request) error {
	for _, item := range items {
		name := item.Name
		if prefix != "" {
			name = prefix + "/" + item.Name
		}

		if item.Request == nil {
			if err := walkPostmanItems(item.Item, name, out); err != nil {
				return err
			}
			continue
		}

		req, err := postmanToRequest(name, item.Request)
		if err != nil {
			return fmt.Errorf("failed to convert %q: %w", name, err)
		}
		*out = append(*out, req)
	}
	return nil
}

func postmanToRequest(name string, pr *PostmanRequest) (types.Request, error) {
	rawURL, err := postmanURL(pr.URL)
	if err != nil {
		return types.Request{}, err
	}

	method := strings.ToUpper(pr.Method)
	if method == "" {
		method = "GET"
	}

	req := types.Request{
		Name:    name,
		Method:  method,
		URL:     rawURL,
		Headers: pr.Header,
	}

	if pr.Body != nil {
		req.Body = &types.Body{
			Mode:       pr.Body.Mode,
			Raw:        pr.Body.Raw,
			URLEncoded: pr.Body.URLEncoded,
			File:       pr.Body.File,
			Disabled:   pr.Body.Disabled,
		}
		for _, p := range pr.Body.FormData {
			req.Body.FormData = append(req.Body.FormData, p.toParam())
		}
		if pr.Body.GraphQL != nil {
			req.Body.GraphQL = &types.GraphQL{
				Query:     pr.Body.GraphQL.Query,
				Variables: graphQLVariables(pr.Body.GraphQL.Variables),
			}
		}
	}

	return req, nil
}

// postmanURL accepts "https://..." or {"raw": "https://...", ...}
func postmanURL(data json.RawMessage) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("request has no url")
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		return str, nil
	}

	var obj struct {
		Raw string `json:"raw"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	return obj.Raw, nil
}

// graphQLVariables returns variables as JSON text whether they were a string or an object
func graphQLVariables(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		return str
	}
	return string(data)
}
