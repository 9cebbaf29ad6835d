package auth

import (
	"database/sql"
	"fmt"
)

func updateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	result, err := db.Exec(
		`UPDATE users SET password = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		userID, hashedPassword,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("user %s not found", userID)
	}
	return nil
}
