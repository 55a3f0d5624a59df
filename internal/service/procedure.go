package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/themepick/api/internal/database"
)

// ProcedureName is the fixed name of the database-side sampling function.
const ProcedureName = "theme_sample"

// procedureBody is the fixed definition of the sampling function, shipped as
// data and installed into the database at startup. Per invocation it scans
// eligible themes in one bounded batch from the $start cursor:
//
//   - id:    a uniformly random member of the batch (NONE for an empty batch)
//   - count: how many ids the batch accumulated
//   - next:  the resume cursor when the batch filled to $cap, NONE when the
//     collection is exhausted
//
// Install checks only test for presence by name, never content, so changing
// this body requires removing the old function first.
const procedureBody = `
DEFINE FUNCTION fn::theme_sample($start: int, $cap: int) {
	LET $batch = (SELECT VALUE record::id(id) FROM themes WHERE image_captured = true ORDER BY id LIMIT $cap START $start);
	LET $count = array::len($batch);
	IF $count == 0 {
		RETURN { id: NONE, count: 0, next: NONE };
	};
	LET $pick = $batch[rand::int(0, $count - 1)];
	IF $count == $cap {
		RETURN { id: $pick, count: $count, next: $start + $count };
	};
	RETURN { id: $pick, count: $count, next: NONE };
};
`

// ProcedureInstaller idempotently installs the sampling function.
//
// The function is created at most once per database lifetime: Ensure lists
// installed functions by name and only submits the definition when absent.
// Two instances racing on first startup is tolerated — the loser of the
// define race re-checks and finds the winner's function.
type ProcedureInstaller struct {
	db database.Database
}

// NewProcedureInstaller creates a new procedure installer
func NewProcedureInstaller(db database.Database) *ProcedureInstaller {
	return &ProcedureInstaller{db: db}
}

// Ensure installs the sampling function unless it is already present
func (p *ProcedureInstaller) Ensure(ctx context.Context) error {
	installed, err := p.isInstalled(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProcedureInstall, err)
	}
	if installed {
		return nil
	}

	if err := p.db.Execute(ctx, procedureBody, nil); err != nil {
		// A concurrent startup may have won the define race.
		installed, checkErr := p.isInstalled(ctx)
		if checkErr == nil && installed {
			slog.Info("sampling function installed concurrently", slog.String("function", ProcedureName))
			return nil
		}
		return fmt.Errorf("%w: %v", ErrProcedureInstall, err)
	}

	slog.Info("installed sampling function", slog.String("function", ProcedureName))
	return nil
}

// isInstalled reports whether the sampling function exists, checked by name
func (p *ProcedureInstaller) isInstalled(ctx context.Context) (bool, error) {
	results, err := p.db.Query(ctx, "INFO FOR DB", nil)
	if err != nil {
		return false, err
	}

	for _, result := range results {
		resp, ok := result.(map[string]interface{})
		if !ok {
			continue
		}
		info, ok := resp["result"].(map[string]interface{})
		if !ok {
			continue
		}
		functions, ok := info["functions"].(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := functions[ProcedureName]; ok {
			return true, nil
		}
	}
	return false, nil
}
