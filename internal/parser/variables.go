package parser

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/studiowebux/shellwget/internal/types"
)

// Variable placeholder pattern: {{varName}}
var varPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// VariableResolver substitutes {{name}} placeholders in requests.
// Lookup order: cliVars (-e flag) -> fileVars (--env-file). {{env.NAME}} reads envVars.
type VariableResolver struct {
	cliVars    map[string]string
	fileVars   map[string]string
	envVars    map[string]string
	unresolved []string
}

// NewVariableResolver creates a resolver; any map may be nil
func NewVariableResolver(cliVars, fileVars, envVars map[string]string) *VariableResolver {
	if cliVars == nil {
		cliVars = make(map[string]string)
	}
	if fileVars == nil {
		fileVars = make(map[string]string)
	}
	if envVars == nil {
		envVars = make(map[string]string)
	}

	return &VariableResolver{
		cliVars:  cliVars,
		fileVars: fileVars,
		envVars:  envVars,
	}
}

// ParseVarFlags turns key=value pairs from the -e flag into a map
func ParseVarFlags(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid variable %q, expected key=value", pair)
		}
		vars[key] = value
	}
	return vars, nil
}

// Unresolved returns the unique names that had no value, in first-seen order
func (vr *VariableResolver) Unresolved() []string {
	seen := make(map[string]bool)
	var unique []string
	for _, v := range vr.unresolved {
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	return unique
}

// Resolve replaces every known placeholder in input. Unknown placeholders are kept.
func (vr *VariableResolver) Resolve(input string) string {
	if !strings.Contains(input, "{{") {
		return input
	}

	return varPattern.ReplaceAllStringFunc(input, func(match string) string {
		varName := strings.TrimSpace(match[2 : len(match)-2])

		if envKey, ok := strings.CutPrefix(varName, "env."); ok {
			if value, ok := vr.envVars[envKey]; ok {
				return value
			}
			vr.unresolved = append(vr.unresolved, varName)
			return match
		}

		if value, ok := vr.cliVars[varName]; ok {
			return value
		}
		if value, ok := vr.fileVars[varName]; ok {
			return value
		}

		vr.unresolved = append(vr.unresolved, varName)
		return match
	})
}

// ResolveRequest returns a copy of req with placeholders resolved in the URL,
// the headers and every body field. req is left untouched.
func (vr *VariableResolver) ResolveRequest(req *types.Request) *types.Request {
	resolved := &types.Request{
		Name:   req.Name,
		Method: req.Method,
		URL:    vr.Resolve(req.URL),
	}

	if req.Headers != nil {
		resolved.Headers = make(types.HeaderList, len(req.Headers))
		for i, h := range req.Headers {
			resolved.Headers[i] = types.Header{
				Key:      vr.Resolve(h.Key),
				Value:    vr.Resolve(h.Value),
				Disabled: h.Disabled,
			}
		}
	}

	if req.Body != nil {
		b := *req.Body
		b.Raw = vr.Resolve(b.Raw)
		b.URLEncoded = vr.resolveParams(b.URLEncoded)
		b.FormData = vr.resolveParams(b.FormData)
		if b.File != nil {
			b.File = &types.File{Src: vr.Resolve(b.File.Src)}
		}
		if b.GraphQL != nil {
			b.GraphQL = &types.GraphQL{
				Query:     vr.Resolve(b.GraphQL.Query),
				Variables: vr.Resolve(b.GraphQL.Variables),
			}
		}
		resolved.Body = &b
	}

	return resolved
}

func (vr *VariableResolver) resolveParams(params []types.Param) []types.Param {
	if params == nil {
		return nil
	}
	out := make([]types.Param, len(params))
	for i, p := range params {
		p.Key = vr.Resolve(p.Key)
		p.Value = vr.Resolve(p.Value)
		p.Src = vr.Resolve(p.Src)
		out[i] = p
	}
	return out
}

// LoadEnvFile loads key=value pairs from a .env file
func LoadEnvFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open env file: %w", err)
	}
	defer file.Close()

	envVars := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		value = strings.TrimSpace(value)

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		envVars[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading env file: %w", err)
	}

	return envVars, nil
}

// LoadSystemEnv loads all system environment variables
func LoadSystemEnv() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		if key, value, ok := strings.Cut(env, "="); ok {
			envVars[key] = value
		}
	}
	return envVars
}
