package preview

import "errors"

// ErrPreviewFailed indicates the backend preview endpoint could not render
// the draft.
var ErrPreviewFailed = errors.New("preview request failed")
