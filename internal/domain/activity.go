package domain

// Activity represents an extracurricular offering with its participant roster.
// Activities are created once at startup from the seed set; only the
// participant list changes at runtime.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// IsSignedUp reports whether email is already on the participant list.
func (a *Activity) IsSignedUp(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
