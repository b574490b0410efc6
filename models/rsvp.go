package models

import "time"

// RSVPAnswer enumerates the accepted guest responses.
type RSVPAnswer string

const (
	RSVPAnswerYes RSVPAnswer = "yes"
	RSVPAnswerNo  RSVPAnswer = "no"
)

// Valid reports whether the answer is one of the accepted values.
func (a RSVPAnswer) Valid() bool {
	return a == RSVPAnswerYes || a == RSVPAnswerNo
}

// RSVPResponse holds at most one response per slug; resubmissions overwrite
// the row in place. The slug is a soft reference to an invitation, not an
// enforced foreign key: an admin deleting the invitation leaves the response
// behind as an orphan.
type RSVPResponse struct {
	BaseModel
	Slug     string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"slug"`
	Name     string     `gorm:"type:varchar(255)" json:"name"`
	Email    string     `gorm:"type:varchar(255)" json:"email"`
	Phone    string     `gorm:"type:varchar(50)" json:"phone"`
	Response RSVPAnswer `gorm:"type:varchar(10);not null" json:"response"`
}

// TableName pins the table name; GORM's pluralization of the initialism is
// not worth depending on.
func (RSVPResponse) TableName() string {
	return "rsvp_responses"
}

// RSVPWithInvitation is the admin listing row: a response joined with the
// name and pronoun of its invitation. The invitation fields are nil when the
// invitation has since been deleted.
type RSVPWithInvitation struct {
	ID                uint       `json:"id"`
	Slug              string     `json:"slug"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Response          RSVPAnswer `json:"response"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	InvitationName    *string    `json:"invitation_name"`
	InvitationPronoun *string    `json:"invitation_pronoun"`
}
