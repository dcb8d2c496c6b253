package variables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_SyncAssignsSamples(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Sync([]string{"user_name", "course_title"})

	require.Equal(t, []string{"user_name", "course_title"}, reg.Names())

	v, ok := reg.Get("user_name")
	require.True(t, ok)
	require.Equal(t, "User name", v)

	v, ok = reg.Get("course_title")
	require.True(t, ok)
	require.Equal(t, "Course title", v)
}

func TestRegistry_SyncPreservesUserValues(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Sync([]string{"user_name", "coupon"})
	reg.Set("user_name", "Sam")

	// The author deletes {coupon} and introduces {deadline}.
	reg.Sync([]string{"user_name", "deadline"})

	v, _ := reg.Get("user_name")
	require.Equal(t, "Sam", v, "user-entered value survives re-extraction")

	_, ok := reg.Get("coupon")
	require.False(t, ok, "removed variable is dropped")

	v, _ = reg.Get("deadline")
	require.Equal(t, "Deadline", v, "new variable gets a sample value")
}

func TestRegistry_SetUnknownNameIgnored(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Sync([]string{"a"})
	reg.Set("ghost", "boo")

	_, ok := reg.Get("ghost")
	require.False(t, ok)
}

func TestRegistry_CustomSampleFunc(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(WithSampleFunc(func(name string) string {
		return "<" + name + ">"
	}))
	reg.Sync([]string{"x"})

	v, _ := reg.Get("x")
	require.Equal(t, "<x>", v)
}

func TestRegistry_ValuesIsACopy(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Sync([]string{"a"})

	vals := reg.Values()
	vals["a"] = "mutated"

	v, _ := reg.Get("a")
	require.Equal(t, "A", v)
}
