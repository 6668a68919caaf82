package dto

// ContactRequest is the contact form payload. Field names match the site's
// enquiry form exactly.
type ContactRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	EventDate     string `json:"eventDate"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	EventType     string `json:"eventType"`
	Message       string `json:"message"`
}

// HasRequiredFields reports whether the four mandatory enquiry fields are set.
func (r ContactRequest) HasRequiredFields() bool {
	return r.Name != "" && r.Email != "" && r.EventDate != "" && r.EventType != ""
}
