package candidate

import (
	"errors"

	candidateerrors "hr-admin/internal/candidate/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return candidateerrors.ErrCandidateNotFound
	}
	if errors.Is(err, ErrRowChanged) {
		return candidateerrors.ErrCandidateConflict
	}

	return err
}
