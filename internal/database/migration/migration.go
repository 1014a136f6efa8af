package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created last; its presence means the schema is complete.
const sentinelTable = "public.contracts"

var steps = []migrationStep{
	{
		Name: "create_table_owners",
		SQL: `CREATE TABLE IF NOT EXISTS owners (
  id             TEXT        PRIMARY KEY,
  user_id        TEXT        NOT NULL,
  full_name      TEXT        NOT NULL,
  marital_status TEXT        NOT NULL DEFAULT '',
  profession     TEXT        NOT NULL DEFAULT '',
  rg             TEXT        NOT NULL DEFAULT '',
  issuing_body   TEXT        NOT NULL DEFAULT '',
  cpf            TEXT        NOT NULL DEFAULT '',
  cellphone      TEXT        NOT NULL DEFAULT '',
  email          TEXT        NOT NULL DEFAULT '',
  state          TEXT        NOT NULL DEFAULT '',
  city           TEXT        NOT NULL DEFAULT '',
  neighborhood   TEXT        NOT NULL DEFAULT '',
  street         TEXT        NOT NULL DEFAULT '',
  number         TEXT        NOT NULL DEFAULT '',
  complement     TEXT        NOT NULL DEFAULT '',
  cep            TEXT        NOT NULL DEFAULT '',
  note           TEXT        NOT NULL DEFAULT '',
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_lessees",
		SQL:  `CREATE TABLE IF NOT EXISTS lessees (LIKE owners INCLUDING ALL);`,
	},
	{
		Name: "create_table_real_estates",
		SQL: `CREATE TABLE IF NOT EXISTS real_estates (
  id                     TEXT        PRIMARY KEY,
  user_id                TEXT        NOT NULL,
  municipal_registration TEXT        NOT NULL DEFAULT '',
  kind                   TEXT        NOT NULL,
  status                 TEXT        NOT NULL,
  has_inspection         BOOLEAN     NOT NULL DEFAULT false,
  has_proof_document     BOOLEAN     NOT NULL DEFAULT false,
  owner_id               TEXT        NOT NULL REFERENCES owners (id),
  lessee_id              TEXT        REFERENCES lessees (id),
  state                  TEXT        NOT NULL DEFAULT '',
  city                   TEXT        NOT NULL DEFAULT '',
  neighborhood           TEXT        NOT NULL DEFAULT '',
  street                 TEXT        NOT NULL DEFAULT '',
  number                 TEXT        NOT NULL DEFAULT '',
  complement             TEXT        NOT NULL DEFAULT '',
  cep                    TEXT        NOT NULL DEFAULT '',
  note                   TEXT        NOT NULL DEFAULT '',
  created_at             TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_contracts",
		SQL: `CREATE TABLE IF NOT EXISTS contracts (
  id             TEXT           PRIMARY KEY,
  identifier     TEXT           NOT NULL,
  user_id        TEXT           NOT NULL,
  kind           TEXT           NOT NULL,
  status         TEXT           NOT NULL,
  start_date     DATE           NOT NULL,
  end_date       DATE           NOT NULL,
  payment_day    INTEGER        NOT NULL CHECK (payment_day BETWEEN 1 AND 31),
  payment_value  NUMERIC(14, 2) NOT NULL CHECK (payment_value >= 0),
  duration       INTEGER        NOT NULL DEFAULT 0,
  owner_id       TEXT           NOT NULL REFERENCES owners (id),
  lessee_id      TEXT           REFERENCES lessees (id),
  real_estate_id TEXT           REFERENCES real_estates (id),
  created_at     TIMESTAMPTZ    NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_contracts_user_start",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contracts_user_start ON contracts (user_id, start_date DESC);`,
	},
	{
		Name: "create_index_contracts_owner",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contracts_owner ON contracts (owner_id);`,
	},
	{
		Name: "create_index_contracts_end_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contracts_end_date ON contracts (end_date);`,
	},
}

// EnsureMigrated checks for the contracts table and runs every step when it is missing.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("db_host", dbHost))
	start := time.Now()

	log.Info("schema check", zap.String("event", "db_migration_check"), zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('" + sentinelTable + "') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("schema check failed",
			zap.String("event", "db_migration_failed"),
			zap.String("status", "error"),
			zap.Error(err),
			zap.Duration("duration_ms", time.Since(start)),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("schema already exists, skipping migration",
			zap.String("event", "db_migration_skip"),
			zap.String("status", "success"),
			zap.Duration("duration_ms", time.Since(start)),
		)
		return nil
	}

	log.Info("migration started", zap.String("event", "db_migration_start"), zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("migration step failed",
				zap.String("event", "db_migration_failed"),
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Duration("duration_ms", time.Since(start)),
				zap.Duration("step_duration_ms", time.Since(stepStart)),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("migration step applied",
			zap.String("event", "db_migration_step"),
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Duration("step_duration_ms", time.Since(stepStart)),
		)
	}

	log.Info("migration finished",
		zap.String("event", "db_migration_success"),
		zap.String("status", "success"),
		zap.Duration("duration_ms", time.Since(start)),
	)
	return nil
}
