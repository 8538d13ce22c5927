package entities

// User is a member of the static roster.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Avatar   string `json:"avatar"`
	Online   bool   `json:"online"`
	JoinDate Date   `json:"joinDate"`
}

func (u User) EntityID() string { return u.ID }

func (u User) Clone() User { return u }

// SessionUser is the profile of the authenticated operator.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
}
