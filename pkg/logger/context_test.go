package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplateKeyExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newExtractorHandler(slog.NewJSONHandler(&buf, nil), TemplateKeyExtractor)
	log := slog.New(h)

	ctx := WithTemplateKey(context.Background(), "welcome-3f2a91bc")
	log.InfoContext(ctx, "preview rendered")
	require.Contains(t, buf.String(), `"template_key":"welcome-3f2a91bc"`)

	buf.Reset()
	log.InfoContext(context.Background(), "no key in context")
	require.NotContains(t, buf.String(), "template_key")
}

func TestExtractorHandler_FiltersNil(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newExtractorHandler(slog.NewJSONHandler(&buf, nil), nil, TemplateKeyExtractor, nil)
	slog.New(h).Info("must not panic")
	require.Contains(t, buf.String(), "must not panic")
}
