package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/studiowebux/shellwget/internal/codegen"
	"github.com/studiowebux/shellwget/internal/codegen/wget"
	"github.com/studiowebux/shellwget/internal/filter"
	"github.com/studiowebux/shellwget/internal/output"
	"github.com/studiowebux/shellwget/internal/types"
	"golang.org/x/sync/errgroup"
)

// generator is shared by every worker; wget.Generator holds no state
var generator codegen.Generator = wget.New()

// Generate converts requests concurrently. Snippets keep the order of requests.
func Generate(ctx context.Context, requests []types.Request, opts types.ConvertOptions) ([]output.Snippet, error) {
	snippets := make([]output.Snippet, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range requests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var convErr error
			generator.ConvertWithOptions(&requests[i], opts, func(err error, snippet string) {
				convErr = err
				snippets[i] = output.Snippet{Name: filter.DisplayName(requests[i]), Code: snippet}
			})
			if convErr != nil {
				return fmt.Errorf("failed to convert %s: %w", filter.DisplayName(requests[i]), convErr)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snippets, nil
}
