package view

import (
	"bytes"
	"context"

	"github.com/a-h/templ"
)

// Render renders c into memory. On error no output is returned, so callers
// never publish a partially rendered page.
func Render(ctx context.Context, c templ.Component) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
