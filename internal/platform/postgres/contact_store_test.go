package postgres

import (
	"testing"

	"github.com/mrglxor/contact-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContactFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		filter    store.ContactFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filters",
			filter:    store.ContactFilter{},
			wantWhere: "username = $1",
			wantArgs:  []any{"khannedy"},
		},
		{
			name:      "name matches first or last name",
			filter:    store.ContactFilter{Name: "eko"},
			wantWhere: "username = $1 AND (first_name LIKE $2 OR last_name LIKE $2)",
			wantArgs:  []any{"khannedy", "%eko%"},
		},
		{
			name:      "email only",
			filter:    store.ContactFilter{Email: "example.com"},
			wantWhere: "username = $1 AND email LIKE $2",
			wantArgs:  []any{"khannedy", "%example.com%"},
		},
		{
			name:      "phone only",
			filter:    store.ContactFilter{Phone: "0812"},
			wantWhere: "username = $1 AND phone LIKE $2",
			wantArgs:  []any{"khannedy", "%0812%"},
		},
		{
			name:   "all filters are conjunctive",
			filter: store.ContactFilter{Name: "eko", Email: "ex", Phone: "08"},
			wantWhere: "username = $1 AND (first_name LIKE $2 OR last_name LIKE $2)" +
				" AND email LIKE $3 AND phone LIKE $4",
			wantArgs: []any{"khannedy", "%eko%", "%ex%", "%08%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildContactFilter("khannedy", tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestNullable(t *testing.T) {
	t.Parallel()

	filled := nullable("hello")
	require.True(t, filled.Valid)
	assert.Equal(t, "hello", filled.String)

	empty := nullable("")
	assert.False(t, empty.Valid)
}

func TestNewPostgresContactStoreRequiresDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewPostgresContactStore(nil, nil)
	})
}
