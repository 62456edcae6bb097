package cqrs

// LoginQuery checks a user's credentials. It has no side effects.
type LoginQuery struct {
	ID       string
	Password string
}

// ListAccountsQuery fetches all accounts belonging to a user.
type ListAccountsQuery struct {
	UserID string
}
