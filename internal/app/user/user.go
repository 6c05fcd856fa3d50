/*
Package user implements registration and retrieval of user accounts.

The account row lives in the relational user store; the profile picture lives in a separate
profile store chosen at startup. Service sequences writes across both and merges them on read.
*/
package user

// User is a row of the relational user store.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	Phone        string
}

// NewUser holds the fields written by InsertUser. The store assigns the identifier.
type NewUser struct {
	FullName     string
	Email        string
	PasswordHash string
	Phone        string
}

// RegisterInput is the registration request as accepted from clients.
type RegisterInput struct {
	FullName       string
	Email          string
	Password       string
	Phone          string
	ProfilePicture string
}

// Record is the merged read model returned to clients. It never carries credentials.
type Record struct {
	UserID         int64  `json:"user_id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ProfilePicture string `json:"profile_picture"`
}

func newRecord(u *User, profilePicture string) *Record {
	return &Record{
		UserID:         u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		Phone:          u.Phone,
		ProfilePicture: profilePicture,
	}
}
