package salary

import (
	"errors"

	salaryerrors "hr-admin/internal/salary/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrSalaryNotFound
	}
	if errors.Is(err, ErrRowChanged) {
		return salaryerrors.ErrSalaryConflict
	}

	return err
}
