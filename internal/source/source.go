package source

import "context"

// MarkupSource returns the raw markup of the standings page.
type MarkupSource interface {
	FetchMarkup(ctx context.Context) (string, error)
}

// Func adapts a plain function to MarkupSource.
type Func func(ctx context.Context) (string, error)

func (f Func) FetchMarkup(ctx context.Context) (string, error) {
	return f(ctx)
}
