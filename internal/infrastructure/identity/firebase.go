package identity

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var ErrMissingFirebaseCredentials = errors.New("missing FIREBASE_CREDENTIALS_PATH")

// NewFirebaseAuthClient initializes the Firebase Admin SDK and returns its
// Auth client, used by the HTTP middleware to verify ID tokens.
func NewFirebaseAuthClient(ctx context.Context) (*auth.Client, error) {
	credentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credentialsPath == "" {
		log.Printf("[auth][firebase] missing FIREBASE_CREDENTIALS_PATH")
		return nil, ErrMissingFirebaseCredentials
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firebase auth client: %w", err)
	}

	log.Printf("[auth][firebase] admin sdk initialized")
	return authClient, nil
}
