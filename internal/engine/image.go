package engine

import (
	"context"
	"fmt"
	"os"
	"time"
)

// DefaultImageTimeout bounds how long a post image load may take.
const DefaultImageTimeout = 10 * time.Second

// LoadImage reads the image at path in the background and waits for the
// result or the deadline, whichever comes first. The read resolves exactly
// once; a deadline hit is reported to the caller rather than leaving the
// post silently uncreated.
func LoadImage(ctx context.Context, path string, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = DefaultImageTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := os.ReadFile(path)
		ch <- result{data: data, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("load image: %w", r.err)
		}
		if len(r.data) == 0 {
			return nil, ErrMissingImage
		}
		return r.data, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("load image %q: %w", path, ctx.Err())
	}
}
