package types

// Body modes understood by the codegen plugins
const (
	BodyModeRaw        = "raw"
	BodyModeURLEncoded = "urlencoded"
	BodyModeFormData   = "formdata"
	BodyModeFile       = "file"
	BodyModeGraphQL    = "graphql"
)

// Indentation types accepted by ConvertOptions.IndentType
const (
	IndentSpace = "space"
	IndentTab   = "tab"
)

// Request is the generic description of an HTTP request consumed by codegen plugins
type Request struct {
	Name    string     `json:"name,omitempty" yaml:"name,omitempty"`
	Method  string     `json:"method" yaml:"method"`
	URL     string     `json:"url" yaml:"url"`
	Headers HeaderList `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body    *Body      `json:"body,omitempty" yaml:"body,omitempty"`
}

// Header is a single request header; disabled headers are kept but never rendered
type Header struct {
	Key      string `json:"key" yaml:"key"`
	Value    string `json:"value" yaml:"value"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// HeaderList is an ordered list of headers
type HeaderList []Header

// EnabledHeaders returns the enabled headers in first-seen order.
// A name that appears several times keeps its first position and its last value.
func (r *Request) EnabledHeaders() []Header {
	var enabled []Header
	index := make(map[string]int)

	for _, h := range r.Headers {
		if h.Disabled {
			continue
		}
		if i, ok := index[h.Key]; ok {
			enabled[i].Value = h.Value
			continue
		}
		index[h.Key] = len(enabled)
		enabled = append(enabled, Header{Key: h.Key, Value: h.Value})
	}

	return enabled
}

// Body describes the request payload. Only the field matching Mode is read.
type Body struct {
	Mode       string   `json:"mode" yaml:"mode"`
	Raw        string   `json:"raw,omitempty" yaml:"raw,omitempty"`
	URLEncoded []Param  `json:"urlencoded,omitempty" yaml:"urlencoded,omitempty"`
	FormData   []Param  `json:"formdata,omitempty" yaml:"formdata,omitempty"`
	File       *File    `json:"file,omitempty" yaml:"file,omitempty"`
	GraphQL    *GraphQL `json:"graphql,omitempty" yaml:"graphql,omitempty"`
	Disabled   bool     `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Param is a key/value pair of an urlencoded or form-data body
type Param struct {
	Key      string `json:"key" yaml:"key"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"` // text or file
	Src      string `json:"src,omitempty" yaml:"src,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// File is a binary body read from disk
type File struct {
	Src string `json:"src" yaml:"src"`
}

// GraphQL is a GraphQL body; Variables holds the raw JSON text
type GraphQL struct {
	Query     string `json:"query" yaml:"query"`
	Variables string `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// ConvertOptions configures a snippet conversion.
// The zero value selects every default.
type ConvertOptions struct {
	IndentType      string `json:"indentType,omitempty" yaml:"indentType,omitempty"`
	IndentCount     int    `json:"indentCount,omitempty" yaml:"indentCount,omitempty"`
	RequestTimeout  int    `json:"requestTimeout,omitempty" yaml:"requestTimeout,omitempty"` // milliseconds
	FollowRedirect  *bool  `json:"followRedirect,omitempty" yaml:"followRedirect,omitempty"`
	RequestBodyTrim bool   `json:"requestBodyTrim,omitempty" yaml:"requestBodyTrim,omitempty"`
}

// OptionDescriptor advertises a configuration knob of a codegen plugin
type OptionDescriptor struct {
	Name        string `json:"name" yaml:"name"`
	ID          string `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type"`
	Default     any    `json:"default" yaml:"default"`
	Description string `json:"description" yaml:"description"`
}

// Bool returns a pointer to b, handy for ConvertOptions.FollowRedirect
func Bool(b bool) *bool {
	return &b
}
