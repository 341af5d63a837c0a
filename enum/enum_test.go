package enum_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/catalogmodel/enum"
)

var (
	lower = enum.MustNew("E",
		enum.Pair{Name: "a", Value: "a"},
		enum.Pair{Name: "b", Value: "b"},
		enum.Pair{Name: "c", Value: "c"},
	)
	caps = enum.MustNew("ECaps",
		enum.Pair{Name: "a", Value: "A"},
		enum.Pair{Name: "b", Value: "B"},
		enum.Pair{Name: "c", Value: "C"},
	)
)

func TestLookup_IgnoresCase(t *testing.T) {
	for _, set := range []*enum.Set{lower, caps} {
		for _, name := range []string{"a", "b", "c"} {
			want := set.MustLookup(name)
			got, err := set.Lookup(strings.ToUpper(name))
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s[%s]", set.Name(), name)
			assert.Equal(t, name, got.Name())
		}
	}
}

func TestLookup_UnknownName(t *testing.T) {
	_, err := caps.Lookup("d")
	require.Error(t, err)
	assert.True(t, errors.Is(err, enum.ErrUnknownName))

	var une *enum.UnknownNameError
	require.True(t, errors.As(err, &une))
	assert.Equal(t, "ECaps", une.Type)
	assert.Equal(t, "d", une.Name)
}

func TestLookup_DoesNotAlterPayloadCase(t *testing.T) {
	_, _ = caps.Lookup("a")
	_, _ = caps.Lookup("B")
	for _, m := range caps.Members() {
		assert.Equal(t, strings.ToUpper(m.Value()), m.Value())
	}
	assert.Equal(t, []string{"A", "B", "C"}, caps.Values())
}

func TestContains(t *testing.T) {
	assert.True(t, caps.Contains(caps.MustLookup("a")))
	assert.True(t, caps.Contains("A"))
	assert.True(t, caps.Contains("a"))
	assert.False(t, caps.Contains(lower.MustLookup("a")))
	assert.False(t, caps.Contains("z"))
	assert.False(t, caps.Contains(1))
}

func TestParse_PrefersValues(t *testing.T) {
	s := enum.MustNew("Swapped",
		enum.Pair{Name: "x", Value: "y"},
		enum.Pair{Name: "y", Value: "z"},
	)
	m, err := s.Parse("Y")
	require.NoError(t, err)
	assert.Equal(t, "x", m.Name())

	m, err = s.Parse("x")
	require.NoError(t, err)
	assert.Equal(t, "x", m.Name())

	_, err = s.Parse("w")
	assert.ErrorIs(t, err, enum.ErrUnknownName)
}

func TestMember_Rendering(t *testing.T) {
	m := lower.MustLookup("a")
	assert.Equal(t, "E.a", m.GoString())
	assert.Equal(t, "a", m.String())

	b, err := caps.MustLookup("b").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"B"`, string(b))

	assert.Equal(t, "enum.Member{}", enum.Member{}.GoString())
	assert.False(t, enum.Member{}.Valid())
}

func TestFromNames_ValueIsName(t *testing.T) {
	s, err := enum.FromNames("e", "a b c")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "a", s.MustLookup("a").String())
}

func TestMembers_Sortable(t *testing.T) {
	ms := lower.Members()
	slices.Reverse(ms)
	slices.SortFunc(ms, enum.Member.Compare)
	assert.Equal(t, lower.Members(), ms)
}

func TestNew_RejectsCaseCollisions(t *testing.T) {
	_, err := enum.New("Dup", enum.Pair{Name: "a", Value: "1"}, enum.Pair{Name: "A", Value: "2"})
	assert.Error(t, err)
	_, err = enum.New("DupValue", enum.Pair{Name: "a", Value: "x"}, enum.Pair{Name: "b", Value: "X"})
	assert.Error(t, err)
	_, err = enum.New("")
	assert.Error(t, err)
}
