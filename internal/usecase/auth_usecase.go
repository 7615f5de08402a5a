// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
)

// --- Input DTOs ---

// SignInInput defines the data required to redeem a sign-in link.
type SignInInput struct {
	Email      string `validate:"required,email"`
	SignInLink string `validate:"required,url"`
}

// SendSignInLinkInput defines the data required to request a sign-in link email.
type SendSignInLinkInput struct {
	Email    string `validate:"required,email"`
	Settings service.ActionCodeSettings
}

// --- Output DTOs ---

// SignInOutput returns the resolved session after a successful sign-in chain.
type SignInOutput struct {
	Session *entity.Session
}

// AuthUsecase defines the interface for the email-link sign-in operations.
// This is the contract the caller depends on; each call owns its own
// in-flight request graph and completes with exactly one result or error.
type AuthUsecase interface {
	// SignInWithEmailLink runs the full chain: redeem the link's oobCode,
	// look up the account behind the issued token, and assemble a Session.
	SignInWithEmailLink(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// SendSignInLink asks the backend to email a sign-in link. It completes
	// with no payload; the confirmation code is consumed server-side.
	SendSignInLink(ctx context.Context, input *SendSignInLinkInput) error
}
