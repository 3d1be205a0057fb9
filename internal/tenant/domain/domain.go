package domain

// AllowListEntry is one permitted user within a tenant domain.
// Emails are unique per domain, compared case-insensitively at write time.
type AllowListEntry struct {
	Email string `json:"email" firestore:"email"`
	Name  string `json:"name" firestore:"name"`
}

// Domain is a logical customer/workspace identified by a URL path segment.
// Created implicitly on the first add-user call.
type Domain struct {
	ID           string           `json:"domain_id" firestore:"-"`
	AllowedUsers []AllowListEntry `json:"allowed_users" firestore:"allowed_users"`
}
