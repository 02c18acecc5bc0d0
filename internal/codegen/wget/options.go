package wget

import "github.com/studiowebux/shellwget/internal/types"

// Options returns the configuration knobs accepted by the generator.
// Each call returns a new slice.
func (g *Generator) Options() []types.OptionDescriptor {
	return []types.OptionDescriptor{
		{
			Name:        "Indent Count",
			ID:          "indentCount",
			Type:        "integer",
			Default:     4,
			Description: "Integer denoting count of indentation required",
		},
		{
			Name:        "Indent type",
			ID:          "indentType",
			Type:        "string",
			Default:     types.IndentSpace,
			Description: "String denoting type of indentation for code snippet. eg: 'space', 'tab'",
		},
		{
			Name:        "Request Timeout",
			ID:          "requestTimeout",
			Type:        "integer",
			Default:     0,
			Description: "Integer denoting time after which the request will bail out in milliseconds",
		},
		{
			Name:        "Follow redirect",
			ID:          "followRedirect",
			Type:        "boolean",
			Default:     true,
			Description: "Boolean denoting whether or not to automatically follow redirects",
		},
		{
			Name:        "Body trim",
			ID:          "requestBodyTrim",
			Type:        "boolean",
			Default:     false,
			Description: "Boolean denoting whether to trim request body fields",
		},
	}
}
