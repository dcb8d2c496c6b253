package maildraft_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/maildraft"
	"github.com/dmitrymomot/maildraft/pkg/sender"
	"github.com/dmitrymomot/maildraft/pkg/variables"
)

const draftSource = `---
subject: Welcome, {user_name}
sender_name: The Team
---

Hi {user_name},

Thanks for signing up. Your coupon is {coupon}.

---
**Getting started**
- Create a project
- Invite your team
---

See you inside.`

func TestEngine_ParseDraft(t *testing.T) {
	t.Parallel()

	engine := maildraft.New()
	draft := engine.ParseDraft(draftSource)

	require.Equal(t, "Welcome, {user_name}", draft.Meta.Subject)
	require.Equal(t, "The Team", draft.Document.SenderName)
	require.Equal(t, "Hi {user_name},", draft.Document.Salutation)
	require.NotNil(t, draft.Document.Highlight)
	require.Equal(t, "Getting started", draft.Document.Highlight.Title)
	require.Equal(t, []string{"user_name", "coupon"}, draft.Variables)
	require.Equal(t, variables.SyntaxSingle, draft.Syntax)
}

func TestEngine_ParseDraft_EmptySource(t *testing.T) {
	t.Parallel()

	draft := maildraft.New().ParseDraft("")
	require.Empty(t, draft.Document.Salutation)
	require.Empty(t, draft.Variables)
}

func TestEngine_RenderPreview(t *testing.T) {
	t.Parallel()

	engine := maildraft.New()
	html, err := engine.RenderPreview(draftSource, map[string]string{
		"user_name": "Jane",
		"coupon":    "SAVE20",
	})
	require.NoError(t, err)
	require.Contains(t, html, "Hi Jane,")
	require.Contains(t, html, "SAVE20")
	require.NotContains(t, html, "{user_name}")
	require.NotContains(t, html, "subject:")
}

func TestEngine_RenderPreview_UnknownTokensStay(t *testing.T) {
	t.Parallel()

	html, err := maildraft.New().RenderPreview("Hi {user_name},", nil)
	require.NoError(t, err)
	require.Contains(t, html, "{user_name}")
}

func TestEngine_BuildTemplate(t *testing.T) {
	t.Parallel()

	engine := maildraft.New()
	tmpl, err := engine.BuildTemplate("Welcome Email", draftSource)
	require.NoError(t, err)
	require.Regexp(t, `^welcome-email-[0-9a-f]{8}$`, tmpl.Key)
	require.Equal(t, "Welcome Email", tmpl.Name)
	require.Equal(t, "Welcome, {user_name}", tmpl.Subject)
	require.Equal(t, []string{"user_name", "coupon"}, tmpl.Variables)
	require.Equal(t, "Hi {user_name},", tmpl.Structured.Salutation)
}

func TestEngine_BuildTemplate_Invalid(t *testing.T) {
	t.Parallel()

	_, err := maildraft.New().BuildTemplate("", "")
	require.Error(t, err)
}

type recordingSender struct {
	last *sender.Email
}

func (r *recordingSender) Send(_ context.Context, email *sender.Email) error {
	r.last = email
	return nil
}

func TestEngine_SendTest(t *testing.T) {
	t.Parallel()

	rec := &recordingSender{}
	engine := maildraft.New(maildraft.WithSender(rec))

	tmpl, err := engine.BuildTemplate("Welcome Email", draftSource)
	require.NoError(t, err)

	err = engine.SendTest(context.Background(), tmpl,
		map[string]string{"user_name": "Jane", "coupon": "SAVE20"},
		"author@example.com")
	require.NoError(t, err)

	require.NotNil(t, rec.last)
	require.Equal(t, []string{"author@example.com"}, rec.last.To)
	require.Equal(t, "Welcome, Jane", rec.last.Subject)
	require.Contains(t, rec.last.HTML, "Hi Jane,")
	require.Equal(t, tmpl.Key, rec.last.Tags["template_key"])
}

func TestEngine_SendTest_NoSender(t *testing.T) {
	t.Parallel()

	engine := maildraft.New()
	tmpl, err := engine.BuildTemplate("Welcome Email", draftSource)
	require.NoError(t, err)

	err = engine.SendTest(context.Background(), tmpl, nil, "author@example.com")
	require.ErrorIs(t, err, maildraft.ErrNoSender)
}
