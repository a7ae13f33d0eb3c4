package benefit

import (
	"errors"

	benefiterrors "hr-admin/internal/benefit/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return benefiterrors.ErrBenefitNotFound
	}
	if errors.Is(err, ErrRowChanged) {
		return benefiterrors.ErrBenefitConflict
	}

	return err
}
