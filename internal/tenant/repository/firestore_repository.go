package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"voicelog-backend/internal/tenant/domain"
)

const (
	domainsCollection     = "domains"
	departmentsCollection = "domainDepartments"
)

// firestoreTenantRepository implements TenantRepository on Firestore.
// Layout: domains/{domainId}.allowed_users[], domainDepartments/{domainId}.departments[].
type firestoreTenantRepository struct {
	client *firestore.Client
}

func NewFirestoreTenantRepository(client *firestore.Client) TenantRepository {
	return &firestoreTenantRepository{client: client}
}

func (r *firestoreTenantRepository) GetDomain(ctx context.Context, domainID string) (*domain.Domain, error) {
	snap, err := r.client.Collection(domainsCollection).Doc(domainID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var d domain.Domain
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	d.ID = domainID
	return &d, nil
}

func (r *firestoreTenantRepository) SaveAllowedUsers(ctx context.Context, domainID string, users []domain.AllowListEntry) error {
	_, err := r.client.Collection(domainsCollection).Doc(domainID).Set(ctx, map[string]interface{}{
		"allowed_users": users,
	}, firestore.MergeAll)
	return err
}

func (r *firestoreTenantRepository) GetDepartments(ctx context.Context, domainID string) ([]string, error) {
	snap, err := r.client.Collection(departmentsCollection).Doc(domainID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var doc struct {
		Departments []string `firestore:"departments"`
	}
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}
	return doc.Departments, nil
}

func (r *firestoreTenantRepository) SaveDepartments(ctx context.Context, domainID string, departments []string) error {
	_, err := r.client.Collection(departmentsCollection).Doc(domainID).Set(ctx, map[string]interface{}{
		"departments": departments,
	}, firestore.MergeAll)
	return err
}
