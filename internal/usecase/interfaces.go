package usecase

import "context"

// FirebaseAuthClient abstracts the auth provider so use cases stay
// testable without Firebase.
type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (idToken string, refreshToken string, err error)
	RefreshIDToken(refreshToken string) (idToken string, newRefreshToken string, err error)
}
