package models

import (
	"time"
)

// Profile is the one-to-one extension of a User: a unique handle plus
// status, free-form fields and owned experience/education entries.
type Profile struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	UserID         uint        `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User        `gorm:"foreignKey:UserID" json:"user"`
	Handle         string      `gorm:"uniqueIndex;size:40;not null" json:"handle"`
	Status         string      `gorm:"not null" json:"status"`
	Company        string      `json:"company,omitempty"`
	Website        string      `json:"website,omitempty"`
	Location       string      `json:"location,omitempty"`
	Bio            string      `json:"bio,omitempty"`
	GithubUsername string      `json:"githubusername,omitempty"`
	// Skills keeps the ordered token list exactly as submitted.
	Skills     []string     `gorm:"serializer:json" json:"skills"`
	Social     SocialLinks  `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience []Experience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experience"`
	Education  []Education  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"education"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// SocialLinks is the embedded social-link record of a profile. Fields are
// only populated when the corresponding input was non-empty.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
}

// Experience is a work-history entry owned by a profile. Entries are listed
// newest-first.
type Experience struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProfileID   uint       `gorm:"index;not null" json:"-"`
	Title       string     `gorm:"not null" json:"title"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `gorm:"not null" json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Education is a schooling entry owned by a profile. Entries are listed
// newest-first.
type Education struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ProfileID    uint       `gorm:"index;not null" json:"-"`
	School       string     `gorm:"not null" json:"school"`
	Degree       string     `gorm:"not null" json:"degree"`
	FieldOfStudy string     `gorm:"not null" json:"fieldofstudy"`
	From         time.Time  `gorm:"not null" json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
