package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/studiowebux/shellwget/internal/config"
	"github.com/studiowebux/shellwget/internal/filter"
	"github.com/studiowebux/shellwget/internal/output"
	"github.com/studiowebux/shellwget/internal/parser"
	"github.com/studiowebux/shellwget/internal/types"
	"golang.org/x/sync/errgroup"
)

// RunOptions contains options for converting request files in CLI mode
type RunOptions struct {
	Files      []string
	Config     *config.Config // already merged with flag overrides
	ExtraVars  []string       // key=value pairs from -e flag
	EnvFile    string         // path to .env file
	Name       string         // exact or fuzzy request name
	Filter     string         // JMESPath filter expression
	OutputPath string
	Copy       bool
	Verbose    bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run converts every selected request into a wget snippet and prints them in input order
func Run(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	log := output.NewLogger(opts.Stderr, opts.Verbose)

	if opts.Filter != "" && !filter.IsValidJMESPath(opts.Filter) {
		return fmt.Errorf("invalid JMESPath expression '%s'", opts.Filter)
	}

	requests, err := loadRequests(ctx, opts)
	if err != nil {
		return err
	}
	log.Debugf("parsed %d request(s)", len(requests))

	if opts.Name != "" {
		if requests, err = filter.ByName(requests, opts.Name); err != nil {
			return fmt.Errorf("failed to select %q: %w", opts.Name, err)
		}
	}
	if opts.Filter != "" {
		if requests, err = filter.Apply(requests, opts.Filter); err != nil {
			return fmt.Errorf("failed to apply filter: %w", err)
		}
	}
	log.Debugf("converting %d request(s)", len(requests))

	resolver, err := newResolver(opts)
	if err != nil {
		return err
	}
	resolved := make([]types.Request, len(requests))
	for i := range requests {
		resolved[i] = *resolver.ResolveRequest(&requests[i])
	}
	if unresolved := resolver.Unresolved(); len(unresolved) > 0 {
		log.Warnf("unresolved variables: %s", strings.Join(unresolved, ", "))
	}

	snippets, err := Generate(ctx, resolved, opts.Config.ConvertOptions())
	if err != nil {
		return err
	}

	if opts.OutputPath != "" {
		if err := writeFile(opts.OutputPath, snippets); err != nil {
			return err
		}
		log.Infof("Snippet saved to %s", opts.OutputPath)
	} else {
		f, _ := opts.Stdout.(*os.File)
		w := output.NewWriter(opts.Stdout, output.ShouldColor(opts.Config.Color, f), opts.Config.Style)
		if err := w.WriteSnippets(snippets); err != nil {
			return fmt.Errorf("failed to write snippets: %w", err)
		}
	}

	if opts.Copy {
		if err := output.Copy(plain(snippets)); err != nil {
			log.Warnf("%v", err)
		} else {
			log.Infof("Copied to clipboard")
		}
	}

	return nil
}

func (o *RunOptions) defaults() {
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// loadRequests parses every file concurrently and concatenates the results in argument order.
// With no file, requests are read from stdin.
func loadRequests(ctx context.Context, opts RunOptions) ([]types.Request, error) {
	if len(opts.Files) == 0 {
		data, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
		return parser.ParseData("", data)
	}

	perFile := make([][]types.Request, len(opts.Files))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, file := range opts.Files {
		g.Go(func() error {
			path, err := resolveFilePath(file)
			if err != nil {
				return err
			}
			requests, err := parser.Parse(path)
			if err != nil {
				return err
			}
			perFile[i] = requests
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []types.Request
	for _, requests := range perFile {
		all = append(all, requests...)
	}
	return all, nil
}

func newResolver(opts RunOptions) (*parser.VariableResolver, error) {
	cliVars, err := parser.ParseVarFlags(opts.ExtraVars)
	if err != nil {
		return nil, err
	}

	var fileVars map[string]string
	if opts.EnvFile != "" {
		if fileVars, err = parser.LoadEnvFile(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	return parser.NewVariableResolver(cliVars, fileVars, parser.LoadSystemEnv()), nil
}

func writeFile(path string, snippets []output.Snippet) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, config.FilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	werr := output.NewWriter(f, false, "").WriteSnippets(snippets)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		return fmt.Errorf("failed to save snippet: %w", err)
	}
	return nil
}

func plain(snippets []output.Snippet) string {
	codes := make([]string, len(snippets))
	for i, s := range snippets {
		codes[i] = s.Code
	}
	return strings.Join(codes, "\n\n")
}

// resolveFilePath attempts to find the actual file path, trying common extensions
// if the exact path doesn't exist.
func resolveFilePath(basePath string) (string, error) {
	// Supported extensions in priority order (empty string = exact match first)
	extensions := []string{"", ".http", ".yaml", ".yml", ".json", ".har"}

	for _, ext := range extensions {
		candidate := basePath + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("file not found: %s (tried %s extensions)", filepath.Clean(basePath), strings.Join(extensions[1:], ", "))
}
