package models

type UserRole string

const (
	SpaceAdminRole UserRole = "SPACE_ADMIN_ROLE"
	SpaceUserRole  UserRole = "SPACE_USER_ROLE"
	CandidateRole  UserRole = "CANDIDATE_ROLE"
)

var roleHumanName = map[UserRole]string{
	SpaceAdminRole: "Administrator",
	SpaceUserRole:  "Recruiter",
	CandidateRole:  "Candidate",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsSpaceAdmin() bool {
	return r == SpaceAdminRole
}

// IsStaff - HR users of the company space
func (r UserRole) IsStaff() bool {
	return r == SpaceAdminRole || r == SpaceUserRole
}

const SystemUser = "System"
