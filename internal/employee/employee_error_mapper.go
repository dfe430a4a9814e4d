package employee

import (
	"errors"

	employeeerrors "go-payledger/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError translates driver-level errors into domain errors.
// 23505 is the Postgres unique_violation code.
func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "idx_employee_number" {
			return employeeerrors.ErrEmployeeNumberTaken
		}
	}
	return err
}
