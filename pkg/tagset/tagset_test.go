package tagset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zcorpan/reformahtml/pkg/tagset"
)

func TestSetHas(t *testing.T) {
	s := tagset.NewSet("PRE", "textarea")

	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{"lowercased member", "pre", true},
		{"plain member", "textarea", true},
		{"original case not stored", "PRE", false},
		{"non-member", "div", false},
		{"empty name never matches", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Has(tt.tag))
		})
	}
}

func TestSetWithWithout(t *testing.T) {
	base := tagset.NewSet("a", "b")

	added := base.With("ref")
	assert.True(t, added.Has("ref"))
	assert.False(t, base.Has("ref"), "With must not mutate the receiver")

	removed := added.Without("a")
	assert.False(t, removed.Has("a"))
	assert.True(t, added.Has("a"), "Without must not mutate the receiver")
}

func TestDefaultTables(t *testing.T) {
	tables := tagset.Default()

	require.NoError(t, tables.Validate())

	assert.True(t, tables.RawText.Has("pre"))
	assert.True(t, tables.RawText.Has("wpt"))
	assert.True(t, tables.Inline.Has("span"))
	assert.True(t, tables.Inline.Has("ref"))
	assert.True(t, tables.StructuralStart.Has("foreignobject"))
	assert.True(t, tables.StructuralEnd.Has("select"))
	assert.False(t, tables.StructuralEnd.Has("div"))
	assert.True(t, tables.Void.Has("br"))
	assert.Equal(t, "data-noreformat", tables.NoReformatAttr)
}

func TestDefaultIsIndependent(t *testing.T) {
	a := tagset.Default()
	b := tagset.Default()

	delete(a.RawText, "pre")

	assert.True(t, b.RawText.Has("pre"), "each Default call owns fresh sets")
}

func TestTablesClone(t *testing.T) {
	orig := tagset.Default()
	clone := orig.Clone()

	delete(clone.Inline, "span")

	assert.True(t, orig.Inline.Has("span"))
	assert.False(t, clone.Inline.Has("span"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*tagset.Tables)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*tagset.Tables) {},
			wantErr: nil,
		},
		{
			name:    "nil set",
			mutate:  func(tb *tagset.Tables) { tb.Inline = nil },
			wantErr: tagset.ErrMissingSet,
		},
		{
			name:    "empty member name",
			mutate:  func(tb *tagset.Tables) { tb.Void[""] = struct{}{} },
			wantErr: tagset.ErrEmptyName,
		},
		{
			name:    "uppercase member name",
			mutate:  func(tb *tagset.Tables) { tb.RawText["PRE"] = struct{}{} },
			wantErr: tagset.ErrNotLowercase,
		},
		{
			name:    "empty attribute name",
			mutate:  func(tb *tagset.Tables) { tb.NoReformatAttr = "" },
			wantErr: tagset.ErrEmptyName,
		},
		{
			name:    "attribute name with equals",
			mutate:  func(tb *tagset.Tables) { tb.NoReformatAttr = "data=x" },
			wantErr: tagset.ErrInvalidAttrName,
		},
		{
			name:    "attribute name with space",
			mutate:  func(tb *tagset.Tables) { tb.NoReformatAttr = "data noreformat" },
			wantErr: tagset.ErrInvalidAttrName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := tagset.Default()
			tt.mutate(&tables)

			err := tables.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
