package dto

import tenantdomain "voicelog-backend/internal/tenant/domain"

type AddUsersRequest struct {
	Users []tenantdomain.AllowListEntry `json:"users" binding:"required"`
}

type RemoveUsersRequest struct {
	Emails []string `json:"emails" binding:"required"`
}

type CheckAccessRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type UsersResponse struct {
	DomainID string                        `json:"domain_id"`
	Users    []tenantdomain.AllowListEntry `json:"users"`
}

type CheckAccessResponse struct {
	Allowed bool                        `json:"allowed"`
	User    *tenantdomain.AllowListEntry `json:"user,omitempty"`
}

type DepartmentsRequest struct {
	Departments []string `json:"departments" binding:"required"`
}

type DepartmentsResponse struct {
	DomainID    string   `json:"domain_id"`
	Departments []string `json:"departments"`
}
