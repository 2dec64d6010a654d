//go:build !windows

package hotkey

import "context"

// Listen always fails off-windows; callers fall back to overlay-local keys.
func Listen(ctx context.Context, b Bindings) (<-chan Action, error) {
	return nil, ErrUnsupported
}
