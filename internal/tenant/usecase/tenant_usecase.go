package usecase

import (
	"context"
	"strings"

	"voicelog-backend/internal/tenant/domain"
	"voicelog-backend/internal/tenant/repository"
	"voicelog-backend/pkg/apperr"
)

// TenantUsecase defines the administrative and login-time operations on a
// tenant's allow-list and department list.
type TenantUsecase interface {
	// AddUsers appends entries that are not already present (case-insensitive
	// email comparison) and returns the number actually added. The domain is
	// created implicitly when absent.
	AddUsers(ctx context.Context, domainID string, entries []domain.AllowListEntry) (int, error)

	// RemoveUsers filters out the given emails (case-insensitive) and returns
	// the number removed.
	RemoveUsers(ctx context.Context, domainID string, emails []string) (int, error)

	// ListUsers returns the allow-list, failing with not_found when the
	// domain does not exist.
	ListUsers(ctx context.Context, domainID string) ([]domain.AllowListEntry, error)

	// IsAllowed reports whether the email is on the domain's allow-list and
	// returns the matched entry. An absent domain means not allowed.
	IsAllowed(ctx context.Context, domainID, email string) (bool, *domain.AllowListEntry, error)

	// ListDepartments returns the tenant's department names.
	ListDepartments(ctx context.Context, domainID string) ([]string, error)

	// ReplaceDepartments replaces the tenant's department list.
	ReplaceDepartments(ctx context.Context, domainID string, departments []string) error
}

type tenantUsecase struct {
	repo repository.TenantRepository
}

func NewTenantUsecase(repo repository.TenantRepository) TenantUsecase {
	return &tenantUsecase{repo: repo}
}

func (u *tenantUsecase) AddUsers(ctx context.Context, domainID string, entries []domain.AllowListEntry) (int, error) {
	if domainID == "" {
		return 0, apperr.InvalidArgument("domain id is required")
	}

	d, err := u.repo.GetDomain(ctx, domainID)
	if err != nil {
		return 0, err
	}

	var users []domain.AllowListEntry
	if d != nil {
		users = d.AllowedUsers
	}

	seen := make(map[string]bool, len(users))
	for _, existing := range users {
		seen[strings.ToLower(existing.Email)] = true
	}

	added := 0
	for _, e := range entries {
		email := strings.TrimSpace(e.Email)
		if email == "" {
			continue
		}
		key := strings.ToLower(email)
		if seen[key] {
			continue
		}
		seen[key] = true
		users = append(users, domain.AllowListEntry{Email: email, Name: e.Name})
		added++
	}

	if added == 0 {
		return 0, nil
	}
	if err := u.repo.SaveAllowedUsers(ctx, domainID, users); err != nil {
		return 0, err
	}
	return added, nil
}

func (u *tenantUsecase) RemoveUsers(ctx context.Context, domainID string, emails []string) (int, error) {
	if domainID == "" {
		return 0, apperr.InvalidArgument("domain id is required")
	}

	d, err := u.repo.GetDomain(ctx, domainID)
	if err != nil {
		return 0, err
	}
	if d == nil {
		return 0, apperr.NotFound("domain not found")
	}

	remove := make(map[string]bool, len(emails))
	for _, e := range emails {
		remove[strings.ToLower(strings.TrimSpace(e))] = true
	}

	remaining := make([]domain.AllowListEntry, 0, len(d.AllowedUsers))
	removed := 0
	for _, user := range d.AllowedUsers {
		if remove[strings.ToLower(user.Email)] {
			removed++
			continue
		}
		remaining = append(remaining, user)
	}

	if removed == 0 {
		return 0, nil
	}
	if err := u.repo.SaveAllowedUsers(ctx, domainID, remaining); err != nil {
		return 0, err
	}
	return removed, nil
}

func (u *tenantUsecase) ListUsers(ctx context.Context, domainID string) ([]domain.AllowListEntry, error) {
	d, err := u.repo.GetDomain(ctx, domainID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFound("domain not found")
	}
	return d.AllowedUsers, nil
}

func (u *tenantUsecase) IsAllowed(ctx context.Context, domainID, email string) (bool, *domain.AllowListEntry, error) {
	if domainID == "" || email == "" {
		return false, nil, apperr.InvalidArgument("domain id and email are required")
	}

	d, err := u.repo.GetDomain(ctx, domainID)
	if err != nil {
		return false, nil, err
	}
	if d == nil {
		return false, nil, nil
	}

	for i := range d.AllowedUsers {
		if strings.EqualFold(d.AllowedUsers[i].Email, email) {
			return true, &d.AllowedUsers[i], nil
		}
	}
	return false, nil, nil
}

func (u *tenantUsecase) ListDepartments(ctx context.Context, domainID string) ([]string, error) {
	return u.repo.GetDepartments(ctx, domainID)
}

func (u *tenantUsecase) ReplaceDepartments(ctx context.Context, domainID string, departments []string) error {
	if domainID == "" {
		return apperr.InvalidArgument("domain id is required")
	}
	return u.repo.SaveDepartments(ctx, domainID, departments)
}
