package models

// Identity carries the contact fields attached to a booking at submission.
// The two session modes require different field sets, so each is its own
// concrete type rather than one struct with optional members.
type Identity interface {
	// ContactName and ContactEmail are required in every mode.
	ContactName() string
	ContactEmail() string
	// ScheduledBy attributes the booking: "candidate" or "operator".
	ScheduledBy() string
}

// SelfServiceIdentity is the candidate booking for themselves: phone and a
// niche/category selection are mandatory, a resume link is optional.
type SelfServiceIdentity struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Niche     string `json:"niche"`
	ResumeURL string `json:"resumeUrl,omitempty"` // Google Drive link, if provided
}

func (i SelfServiceIdentity) ContactName() string  { return i.Name }
func (i SelfServiceIdentity) ContactEmail() string { return i.Email }
func (i SelfServiceIdentity) ScheduledBy() string  { return "candidate" }

// OperatorIdentity is an operator booking on a candidate's behalf.
type OperatorIdentity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (i OperatorIdentity) ContactName() string  { return i.Name }
func (i OperatorIdentity) ContactEmail() string { return i.Email }
func (i OperatorIdentity) ScheduledBy() string  { return "operator" }
