package render

import "errors"

// ErrRenderFailed indicates markdown conversion or shell wrapping failed.
var ErrRenderFailed = errors.New("failed to render template")
