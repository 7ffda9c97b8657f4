package helper_test

import (
	"testing"

	"bistro/config"
	"bistro/helper"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseURL(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		table  string
		want   string
	}{
		{
			name: "plain",
			want: "postgres://bistro:p%40ss@db:5432/reservations?sslmode=disable&timezone=UTC",
		},
		{
			name:   "prefixed database with custom migrations table",
			prefix: "test_",
			table:  "schema_migrations_bistro",
			want:   "postgres://bistro:p%40ss@db:5432/test_reservations?sslmode=disable&timezone=UTC&x-migrations-table=schema_migrations_bistro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.DB.Postgres.Prefix = tt.prefix
			cfg.DB.Postgres.MigrationTable = tt.table
			cfg.DB.Postgres.Write.Username = "bistro"
			cfg.DB.Postgres.Write.Password = "p@ss"
			cfg.DB.Postgres.Write.Host = "db"
			cfg.DB.Postgres.Write.Port = "5432"
			cfg.DB.Postgres.Write.Name = "reservations"
			cfg.DB.Postgres.Write.SSLMode = "disable"

			assert.Equal(t, tt.want, helper.DatabaseURL(cfg))
		})
	}
}
