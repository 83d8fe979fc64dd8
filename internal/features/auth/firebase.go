package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/xyz-asif/foundly/internal/config"
)

// InitFirebase initializes the Firebase Admin SDK and returns the Auth client
func InitFirebase(cfg *config.Config) (*auth.Client, error) {
	opt := option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %v", err)
	}

	return client, nil
}

// FirebaseUser holds the identity fields extracted from a verified ID token.
type FirebaseUser struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

// VerifyFirebaseToken verifies the ID token against the Firebase project and
// pulls out the identity claims we persist.
func VerifyFirebaseToken(ctx context.Context, client *auth.Client, idToken string) (*FirebaseUser, error) {
	decoded, err := client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid firebase token: %v", err)
	}

	user := &FirebaseUser{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		user.Name = name
	}
	if picture, ok := decoded.Claims["picture"].(string); ok {
		user.Picture = picture
	}

	return user, nil
}
