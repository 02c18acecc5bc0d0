package parser

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/studiowebux/shellwget/internal/types"
)

// CurlHints carries cURL flags that map to conversion options rather than request fields
type CurlHints struct {
	FollowRedirects bool
	TimeoutMillis   int
}

// ParseCurl parses a cURL command line into a request
func ParseCurl(command string) (*types.Request, CurlHints, error) {
	var hints CurlHints

	// Clean up the command - handle multiline with backslashes
	command = strings.ReplaceAll(command, "\\\r\n", " ")
	command = strings.ReplaceAll(command, "\\\n", " ")

	args, err := splitShellWords(command)
	if err != nil {
		return nil, hints, fmt.Errorf("failed to parse cURL command: %w", err)
	}
	if len(args) > 0 && args[0] == "curl" {
		args = args[1:]
	}

	req := &types.Request{}
	var data []string
	var form []types.Param
	getMode := false
	methodSet := false

	next := func(i *int, flag string) (string, error) {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("flag %s requires a value", flag)
		}
		*i++
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// --flag=value form
		flag, inline, hasInline := strings.Cut(arg, "=")
		if !strings.HasPrefix(arg, "--") || !hasInline {
			flag, inline, hasInline = arg, "", false
		}
		value := func() (string, error) {
			if hasInline {
				return inline, nil
			}
			return next(&i, flag)
		}

		switch flag {
		case "-X", "--request":
			v, err := value()
			if err != nil {
				return nil, hints, err
			}
			req.Method = strings.ToUpper(v)
			methodSet = true
		case "-H", "--header":
			v, err := value()
			if err != nil {
				return nil, hints, err
			}
			key, val, ok := strings.Cut(v, ":")
			if !ok {
				continue
			}
			req.Headers = append(req.Headers, types.Header{Key: strings.TrimSpace(key), Value: strings.TrimSpace(val)})
		case "-d", "--data", "--data-raw", "--data-binary", "--data-ascii":
			v, err := value()
			if err != nil {
				return nil, hints, err
			}
			data = append(data, v)
		case "--data-urlencode":
			v, err := value()
			if err != nil {
				return nil, hints, err
			}
			data = append(data, encodeCurlData(v))
		case "-F", "--form":
			v, err := value()
			if err != nil {
				return nil, hints, err
			}
			form = append(form, formParam(v))
		case "--url":
			v, err := value()
			if err != nil {
				return nil, hints, err
			}
			req.URL = v
		case "-A", "--user-agent":
			v, err := value()
			if err != nil {
				return nil, hints, err
			}
			req.Headers = append(req.Headers, types.Header{Key: "User-Agent", Value: v})
		case "-e", "--referer":
			v, err := value()
			if err != nil {
				return nil, hints, err
			}
			req.Headers = append(req.Headers, types.Header{Key: "Referer", Value: v})
		case "-b", "--cookie":
			v, err := value()
			if err != nil {
				return nil, hints, err
			}
			req.Headers = append(req.Headers, types.Header{Key: "Cookie", Value: v})
		case "-m", "--max-time":
			v, err := value()
			if err != nil {
				return nil, hints, err
			}
			seconds, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, hints, fmt.Errorf("invalid --max-time %q: %w", v, err)
			}
			hints.TimeoutMillis = int(seconds * 1000)
		case "-L", "--location":
			hints.FollowRedirects = true
		case "-k", "--insecure":
			// wget snippets always carry --no-check-certificate
		case "-G", "--get":
			getMode = true
		case "-I", "--head":
			req.Method = "HEAD"
			methodSet = true
		default:
			if strings.HasPrefix(arg, "-") {
				// Unsupported flag; its value, if any, is left for the URL check below
				continue
			}
			if req.URL == "" {
				req.URL = arg
			}
		}
	}

	if req.URL == "" {
		return nil, hints, errors.New("could not find URL in cURL command")
	}

	switch {
	case getMode && len(data) > 0:
		sep := "?"
		if strings.Contains(req.URL, "?") {
			sep = "&"
		}
		req.URL += sep + strings.Join(data, "&")
		data = nil
	case len(form) > 0:
		req.Body = &types.Body{Mode: types.BodyModeFormData, FormData: form}
	case len(data) > 0:
		req.Body = &types.Body{Mode: types.BodyModeRaw, Raw: strings.Join(data, "&")}
	}

	if !methodSet {
		// If no method specified but has data, assume POST
		req.Method = "GET"
		if req.Body != nil {
			req.Method = "POST"
		}
	}

	return req, hints, nil
}

// encodeCurlData applies the --data-urlencode rules: "name=content" encodes content only
func encodeCurlData(v string) string {
	if name, content, ok := strings.Cut(v, "="); ok {
		if name == "" {
			return url.QueryEscape(content)
		}
		return name + "=" + url.QueryEscape(content)
	}
	return url.QueryEscape(v)
}

// formParam reads -F "name=value" and -F "name=@file"
func formParam(v string) types.Param {
	name, content, _ := strings.Cut(v, "=")
	if src, ok := strings.CutPrefix(content, "@"); ok {
		return types.Param{Key: name, Type: "file", Src: src}
	}
	return types.Param{Key: name, Value: content, Type: "text"}
}

// splitShellWords splits a POSIX shell command line honoring single quotes,
// double quotes and backslash escapes.
func splitShellWords(s string) ([]string, error) {
	var words []string
	var word strings.Builder
	inWord := false

	const (
		none = iota
		single
		double
	)
	quote := none

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch quote {
		case single:
			if c == '\'' {
				quote = none
				continue
			}
			word.WriteByte(c)
			continue
		case double:
			switch c {
			case '"':
				quote = none
			case '\\':
				if i+1 < len(s) && strings.IndexByte("$`\"\\\n", s[i+1]) >= 0 {
					i++
					word.WriteByte(s[i])
				} else {
					word.WriteByte(c)
				}
			default:
				word.WriteByte(c)
			}
			continue
		}

		switch c {
		case ' ', '\t', '\n', '\r':
			if inWord {
				words = append(words, word.String())
				word.Reset()
				inWord = false
			}
		case '\'':
			quote = single
			inWord = true
		case '"':
			quote = double
			inWord = true
		case '\\':
			if i+1 < len(s) {
				i++
				word.WriteByte(s[i])
			}
			inWord = true
		default:
			word.WriteByte(c)
			inWord = true
		}
	}

	if quote != none {
		return nil, errors.New("unterminated quote")
	}
	if inWord {
		words = append(words, word.String())
	}
	return words, nil
}
