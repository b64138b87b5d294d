// internal/domain/inquiry/entity.go
package inquiry

import "time"

// Inquiry is a buyer-submitted message attached to a listing. Submission
// requires no authentication.
type Inquiry struct {
	ID        int64     `json:"id" db:"id"`
	ListingID int64     `json:"listing_id" db:"listing_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Message   string    `json:"message" db:"message"`
	Responded bool      `json:"responded" db:"responded"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Joined from the parent listing on seller-facing reads.
	ListingSlug  string `json:"listing_slug,omitempty" db:"listing_slug"`
	ListingTitle string `json:"listing_title,omitempty" db:"listing_title"`
}

// Toggle flips the responded flag. Applying it twice restores the
// original value.
func (i *Inquiry) Toggle() {
	i.Responded = !i.Responded
}
