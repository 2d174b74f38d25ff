package domain

// Actor identifies the caller of an operation. Both fields are optional.
type Actor struct {
	UserID    string
	UserEmail string
}
