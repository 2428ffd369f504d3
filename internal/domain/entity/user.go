package entity

// CurrentUser is the cashier behind the active session
type CurrentUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
	BranchName string `json:"branch_name"`
}
