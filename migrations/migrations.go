// Package migrations содержит схему SQL-хранилища кэша профилей.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
)

//go:embed *.sql
var files embed.FS

// Apply выполняет все миграции по порядку имён. Миграции идемпотентны.
func Apply(ctx context.Context, db *sqlx.DB) error {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob: %w", err)
	}

	sort.Strings(names)

	for _, name := range names {
		query, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("files.ReadFile %s: %w", name, err)
		}

		if _, err = db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("db.Exec %s: %w", name, err)
		}
	}

	return nil
}
