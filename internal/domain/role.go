package domain

// Role distinguishes the two actor kinds known to the service.
type Role string

const (
	RoleSubmitter Role = "SUBMITTER"
	RoleOperator  Role = "OPERATOR"
)
