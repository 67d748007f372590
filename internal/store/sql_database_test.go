package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/migrations"
)

func TestNewDB_PlaceholdersFollowDialect(t *testing.T) {
	tests := []struct {
		dialect migrations.Dialect
		want    string
	}{
		{migrations.Postgres, "SELECT id FROM users WHERE login = $1"},
		{migrations.SQLite, "SELECT id FROM users WHERE login = ?"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			db := newDB(nil, tt.dialect, NewPostgresErrorClassifier(), logger.Nop())

			query, args, err := db.builder.Select("id").From("users").Where("login = ?", "alice").ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"alice"}, args)
		})
	}
}
