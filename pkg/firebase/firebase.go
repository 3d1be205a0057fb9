package firebase

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// App bundles the Firebase clients the service needs: Auth for ID token
// verification and Firestore for persistence.
type App struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

// NewApp initializes the Firebase app from the given project ID and optional
// service-account credentials file (application default credentials are used
// when the file path is empty).
func NewApp(ctx context.Context, projectID, credentialsFile string) (*App, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	log.Println("[Firebase] App initialized successfully")
	return &App{
		Auth:      authClient,
		Firestore: firestoreClient,
	}, nil
}

// Close releases the Firestore client's underlying connections.
func (a *App) Close() error {
	return a.Firestore.Close()
}
