package service

import (
	"fmt"

	"github.com/google/uuid"

	"gatherly/internal/domain"
)

// validateID checks that an identifier is a well-formed resource
// reference before any store access.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return nil
}
