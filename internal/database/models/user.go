package models

// User is an account known to the platform. Authentication lives elsewhere;
// this core only reads identity, role and contact details.
type User struct {
	BaseModel
	Email        string   `json:"email,omitempty" gorm:"size:255;uniqueIndex:idx_users_email,where:email <> ''" validate:"omitempty,email,max=255"`
	PasswordHash string   `json:"-" gorm:"size:255"`
	FirstName    string   `json:"first_name" gorm:"size:100"`
	LastName     string   `json:"last_name" gorm:"size:100"`
	Phone        string   `json:"phone,omitempty" gorm:"size:30"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'USER'"`
	IsActive     bool     `json:"is_active" gorm:"default:true"`
	IsBanned     bool     `json:"is_banned" gorm:"default:false"`
	IsAnonymous  bool     `json:"is_anonymous" gorm:"default:false"`

	// Relationships
	VolunteerProfile *VolunteerProfile `json:"volunteer_profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Emergencies      []Emergency       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName joins first and last name
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
