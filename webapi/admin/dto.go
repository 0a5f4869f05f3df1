package admin

// ReviewInput is the body of a KYC decision.
type ReviewInput struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Notes  string `json:"notes" validate:"max=1024"`
}

// RoleInput is the body of a role change.
type RoleInput struct {
	Role string `json:"role" validate:"required,oneof=customer admin"`
}
