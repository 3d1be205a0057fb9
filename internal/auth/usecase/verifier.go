package usecase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// User is the verified identity attached to each request.
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenVerifier validates a bearer token and yields the stable identity.
// Verification (signature, expiry, issuer) is delegated entirely to the
// identity provider; any failure means unauthenticated, never retried.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*User, error)
}

// firebaseVerifier verifies Firebase Auth ID tokens.
type firebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(client *auth.Client) TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*User, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user := &User{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		user.Name = name
	}
	return user, nil
}
