package domain

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleAdmin     Role = "admin"
)

// Session is the authenticated actor for the duration of a request. NIK is
// set only for applicant sessions.
type Session struct {
	Role Role   `json:"role"`
	Name string `json:"name"`
	NIK  string `json:"nik,omitempty"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

func (s *Session) IsApplicant() bool {
	return s != nil && s.Role == RoleApplicant
}
