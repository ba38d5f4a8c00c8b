package account

import "time"

// Account represents a registered user of the recipe app.
type Account struct {
	ID           string
	Name         string
	Email        string
	Username     string
	PasswordHash []byte
	Phone        string
	CreatedAt    time.Time
}

// Profile is the client-facing projection of an Account. It never carries
// the password hash.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile returns the safe projection of the account.
func (a Account) Profile() Profile {
	return Profile{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Username:  a.Username,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
	}
}

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Username string
	Password string
	Phone    string
}
