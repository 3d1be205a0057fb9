package repository

import (
	"context"

	"voicelog-backend/internal/tenant/domain"
)

// TenantRepository defines the interface for domain allow-list and
// department storage. The read-modify-write cycle around SaveAllowedUsers is
// last-writer-wins; allow-list edits are rare administrative actions.
type TenantRepository interface {
	// GetDomain returns the domain document, or (nil, nil) when absent.
	GetDomain(ctx context.Context, domainID string) (*domain.Domain, error)

	// SaveAllowedUsers writes the full allow-list array back.
	SaveAllowedUsers(ctx context.Context, domainID string, users []domain.AllowListEntry) error

	// GetDepartments returns the tenant's department names, or (nil, nil)
	// when none are configured.
	GetDepartments(ctx context.Context, domainID string) ([]string, error)

	// SaveDepartments replaces the tenant's department list.
	SaveDepartments(ctx context.Context, domainID string, departments []string) error
}
