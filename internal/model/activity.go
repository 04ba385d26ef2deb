package model

// Activity is an extracurricular offering. Activities are identified by their
// name, which acts as the primary key in the store; the name is carried in the
// URL path rather than in the record itself.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy of the activity so callers can't mutate the
// store's participant slice through a returned record.
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return &c
}

// HasParticipant reports whether email is already registered.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// MessageResponse is the success body for signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}
