package models

// Invitation is one personalized invitation, addressed by its slug. The slug
// is the external key guests see in their URL; it is unique across live rows
// and may be renamed by the admin as long as uniqueness holds.
type Invitation struct {
	BaseModel
	Slug          string `gorm:"type:varchar(64);uniqueIndex;not null" json:"slug"`
	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	Pronoun       string `gorm:"type:varchar(50);not null" json:"pronoun"`
	Message       string `gorm:"type:text;not null" json:"message"`
	InviteToParty bool   `gorm:"not null" json:"invite_to_party"`
}
