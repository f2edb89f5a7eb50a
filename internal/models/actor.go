package models

// ActorRef records which admin performed a lifecycle action (confirm,
// check-in, dispatch, payment processing). Embedded with a per-action
// column prefix instead of keeping separate nullable foreign keys.
type ActorRef struct {
	AdminID *uint  `gorm:"index" json:"admin_id,omitempty"`
	Role    string `gorm:"size:30" json:"role,omitempty"`
}

// Set returns whether the action has been performed by anyone.
func (a ActorRef) Set() bool {
	return a.AdminID != nil
}
