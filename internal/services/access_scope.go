package services

import (
	"context"

	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
)

// Caller identifies the authenticated account a report runs as. The role is
// normalized to the models.Role* constants at the auth middleware boundary,
// so no case folding happens here.
type Caller struct {
	ID   uint
	Role string
}

// IsManager returns true for property-manager callers
func (c Caller) IsManager() bool {
	return c.Role == models.RoleManager
}

// resolveScope decides what slice of the portfolio a caller may read.
//
// Non-manager roles are unrestricted; a requested property id passes through
// as a plain filter with no ownership check. Managers requesting a specific
// property must own it — a missing property and a foreign property both fail
// closed with ErrAccessDenied. Managers with no requested property get a
// manager-wide scope that every bulk read enforces through the Property join
// rather than trusting any single id.
func (s *ReportService) resolveScope(ctx context.Context, caller Caller, propertyID *uint) (repository.ReportScope, error) {
	if !caller.IsManager() {
		return repository.ReportScope{PropertyID: propertyID}, nil
	}

	if propertyID != nil {
		property, err := s.propertyRepo.FindByID(ctx, *propertyID)
		if err != nil {
			return repository.ReportScope{}, ErrAccessDenied
		}
		if !property.OwnedBy(caller.ID) {
			return repository.ReportScope{}, ErrAccessDenied
		}
		return repository.ReportScope{PropertyID: propertyID}, nil
	}

	managerID := caller.ID
	return repository.ReportScope{ManagerID: &managerID}, nil
}
