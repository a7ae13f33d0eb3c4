package jobopening

import (
	"errors"

	jobopeningerrors "hr-admin/internal/jobopening/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return jobopeningerrors.ErrJobOpeningNotFound
	}
	if errors.Is(err, ErrRowChanged) {
		return jobopeningerrors.ErrJobOpeningConflict
	}

	return err
}
