package salary

import (
	"errors"
	"strings"

	salaryerrors "go-payledger/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError folds the unique-violation on the period index into the
// same DuplicatePeriod failure the pre-check raises, so a concurrent second
// writer and a late caller see one error.
func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_employee_period" {
			return salaryerrors.ErrDuplicatePeriod
		}
		return err
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "uq_salary_employee_period") {
		return salaryerrors.ErrDuplicatePeriod
	}
	return err
}
