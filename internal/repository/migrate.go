package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order at startup. Each statement is idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id CHAR(36) PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		type ENUM('income', 'expense') NOT NULL,
		amount DECIMAL(13,2) NOT NULL,
		category VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		date DATETIME NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		KEY idx_transactions_user_date (user_id, date),
		CONSTRAINT fk_transactions_user FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
}

// Migrate bootstraps the schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying migration: %w", err)
		}
	}
	return nil
}
