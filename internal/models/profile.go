package models

// Preferences holds a student's search preferences.
type Preferences struct {
	JobTypes  []string `json:"jobTypes"`
	Locations []string `json:"locations"`
}

// Profile carries the role-specific extended attributes of an Identity. It is
// a role-tagged union persisted as a single record: student fields are set
// when Role is student, company fields when Role is company. Location is
// shared by both variants. Exactly one Profile exists per Identity and shares
// its id and role.
type Profile struct {
	Identity

	// Student fields
	Skills      []string     `json:"skills,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	ResumeURL   string       `json:"resumeUrl,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`

	// Company fields
	CompanyName string `json:"companyName,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`

	Location string `json:"location,omitempty"`
}

func (p Profile) IsStudent() bool { return p.Role == RoleStudent }
func (p Profile) IsCompany() bool { return p.Role == RoleCompany }
