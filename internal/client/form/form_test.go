package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() Schema {
	return Schema{
		Kind: "equipment",
		Fields: []Field{
			{Name: "name", Label: "Name", Type: TextField, Required: true},
			{Name: "description", Label: "Description", Type: LongTextField},
			{Name: "tags", Label: "Tags", Type: ListField},
			{Name: "priority", Label: "Priority", Type: NumberField, Default: "1"},
			{Name: "featured", Label: "Featured", Type: BoolField, Default: "no"},
			{Name: "status", Label: "Status", Type: SelectField, Default: "active",
				Options: []string{"active", "inactive", "maintenance"}},
		},
	}
}

func TestNewDraft_Defaults(t *testing.T) {
	draft := NewDraft(testSchema())

	assert.Equal(t, "", draft.Get("name"))
	assert.Equal(t, "1", draft.Get("priority"))
	assert.Equal(t, "active", draft.Get("status"))
	assert.False(t, draft.Bool("featured"))
}

func TestDraft_SetAndGet(t *testing.T) {
	draft := NewDraft(testSchema())

	require.NoError(t, draft.Set("name", "  Floor Machine  "))
	assert.Equal(t, "Floor Machine", draft.Get("name"), "значение обрезается")

	err := draft.Set("unknown", "x")
	assert.Error(t, err)
}

func TestDraft_Set_SelectValidation(t *testing.T) {
	draft := NewDraft(testSchema())

	require.NoError(t, draft.Set("status", "maintenance"))
	assert.Equal(t, "maintenance", draft.Get("status"))

	err := draft.Set("status", "broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected one of")

	// Пустое значение select допустимо: остается как есть
	require.NoError(t, draft.Set("status", ""))
}

func TestDraft_Validate_MissingRequired(t *testing.T) {
	draft := NewDraft(testSchema())

	err := draft.Validate()
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Name"}, validationErr.Missing)
	assert.Contains(t, err.Error(), "required fields missing: Name")
}

func TestDraft_Validate_OK(t *testing.T) {
	draft := NewDraft(testSchema())
	require.NoError(t, draft.Set("name", "Floor Machine"))

	assert.NoError(t, draft.Validate())
}

func TestDraft_ListRoundTrip(t *testing.T) {
	draft := NewDraft(testSchema())

	require.NoError(t, draft.Set("tags", "cleaning, office, , deep clean"))
	assert.Equal(t, []string{"cleaning", "office", "deep clean"}, draft.List("tags"))
}

func TestDraft_Seed(t *testing.T) {
	draft := NewDraft(testSchema())

	draft.Seed(map[string]string{
		"name":    "Vacuum",
		"tags":    JoinList([]string{"floors", "carpets"}),
		"unknown": "ignored",
	})

	assert.Equal(t, "Vacuum", draft.Get("name"))
	assert.Equal(t, "floors, carpets", draft.Get("tags"))
	assert.Equal(t, "", draft.Get("unknown"))
}

func TestDraft_Reset(t *testing.T) {
	draft := NewDraft(testSchema())
	require.NoError(t, draft.Set("name", "Vacuum"))
	require.NoError(t, draft.Set("status", "inactive"))

	draft.Reset()

	assert.Equal(t, "", draft.Get("name"))
	assert.Equal(t, "active", draft.Get("status"))
}

func TestDraft_NumericHelpers(t *testing.T) {
	schema := Schema{
		Kind: "service",
		Fields: []Field{
			{Name: "amount", Label: "Amount", Type: DecimalField},
			{Name: "priority", Label: "Priority", Type: NumberField},
		},
	}
	draft := NewDraft(schema)

	require.NoError(t, draft.Set("amount", "149.90"))
	require.NoError(t, draft.Set("priority", "3"))
	assert.InDelta(t, 149.90, draft.Float("amount"), 0.0001)
	assert.Equal(t, 3, draft.Int("priority"))

	require.NoError(t, draft.Set("amount", "not-a-number"))
	assert.Zero(t, draft.Float("amount"))
	assert.Zero(t, draft.Int("amount"))
}

func TestDraft_BoolParsing(t *testing.T) {
	draft := NewDraft(testSchema())

	for _, value := range []string{"yes", "y", "true", "1", "Yes"} {
		require.NoError(t, draft.Set("featured", value))
		assert.True(t, draft.Bool("featured"), value)
	}
	for _, value := range []string{"no", "n", "false", "0", ""} {
		require.NoError(t, draft.Set("featured", value))
		assert.False(t, draft.Bool("featured"), value)
	}
}

func TestSplitJoinList(t *testing.T) {
	assert.Empty(t, SplitList(""))
	assert.Empty(t, SplitList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, SplitList("a,b"))
	assert.Equal(t, "a, b", JoinList([]string{"a", "b"}))
	assert.Equal(t, "", JoinList(nil))
}

func TestDraft_Values_Copy(t *testing.T) {
	draft := NewDraft(testSchema())
	require.NoError(t, draft.Set("name", "Vacuum"))

	values := draft.Values()
	values["name"] = "mutated"

	assert.Equal(t, "Vacuum", draft.Get("name"), "Values возвращает копию")
}
