// Package migrations embeds the SurrealDB schema definitions and applies
// them at startup. Every statement is idempotent, so Apply can run on each
// boot and tolerates two instances initializing the schema concurrently.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"sort"

	"github.com/themepick/api/internal/database"
)

//go:embed *.surql
var files embed.FS

// All returns the embedded migration files in lexical (version) order.
func All() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("reading embedded migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]string, 0, len(names))
	for _, name := range names {
		content, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		out = append(out, string(content))
	}
	return out, nil
}

// Apply runs every embedded migration against the database in order.
func Apply(ctx context.Context, db database.Database) error {
	migs, err := All()
	if err != nil {
		return err
	}

	for i, mig := range migs {
		if err := db.Execute(ctx, mig, nil); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
