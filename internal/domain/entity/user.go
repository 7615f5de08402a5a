// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the authenticated account as reported by the backend's account
// lookup. It carries only the fields the sign-in flow resolves; nothing here
// is persisted by the client.
type User struct {
	LocalID      string // The backend-assigned account identifier.
	Email        string // The email address the account is registered under.
	DisplayName  string // The user's display name, empty when the account has none.
	RefreshToken string // The refresh token minted by the sign-in that produced this user.
	IsAnonymous  bool   // Always false for email-link sign-in; anonymous accounts never reach this flow.
}
