package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/studiowebux/shellwget/internal/parser"
	"github.com/studiowebux/shellwget/internal/types"
)

// Curl2Wget converts a cURL command line into a wget snippet.
// A curl -m timeout fills in RequestTimeout when none is configured.
// Without a configured follow setting, redirects are followed only when the
// command has -L, matching curl.
func Curl2Wget(command string, opts types.ConvertOptions) (string, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return "", fmt.Errorf("no cURL command provided (pipe it or provide as argument)")
	}

	req, hints, err := parser.ParseCurl(command)
	if err != nil {
		return "", err
	}

	if opts.RequestTimeout == 0 && hints.TimeoutMillis > 0 {
		opts.RequestTimeout = hints.TimeoutMillis
	}
	if opts.FollowRedirect == nil {
		opts.FollowRedirect = types.Bool(hints.FollowRedirects)
	}

	var (
		snippet string
		convErr error
	)
	generator.ConvertWithOptions(req, opts, func(err error, s string) {
		snippet, convErr = s, err
	})
	return snippet, convErr
}

// ReadCurlCommand returns args joined, or the content of stdin when no argument is given
func ReadCurlCommand(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if stdin == nil {
		return "", fmt.Errorf("no cURL command provided (pipe it or provide as argument)")
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(data), nil
}
