package contact

import "time"

const (
	StatusNew       = "new"
	StatusRead      = "read"
	StatusContacted = "contacted"
	StatusClosed    = "closed"

	DefaultSource = "website"
)

var validStatuses = map[string]struct{}{
	StatusNew:       {},
	StatusRead:      {},
	StatusContacted: {},
	StatusClosed:    {},
}

// IsValidStatus reports membership only. Any status may transition to any
// other; transition legality is not enforced.
func IsValidStatus(value string) bool {
	_, ok := validStatuses[value]
	return ok
}

type Submission struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Service   string    `bson:"service,omitempty" json:"service,omitempty"`
	Subject   string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string    `bson:"message" json:"message"`
	Source    string    `bson:"source" json:"source"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Service string `json:"service" validate:"omitempty,max=120"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
	Source  string `json:"source" validate:"omitempty,max=60"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=new read contacted closed"`
}

type ListFilter struct {
	Status string
}
