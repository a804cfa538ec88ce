package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the caller identity through use-case boundaries.
// For this service the caller is a browser tab identified by its session ID.
type Scope struct {
	SessionID string
}

// StudentProfile is the user-entered profile persisted with the session.
type StudentProfile struct {
	Name       string `json:"name"`
	Major      string `json:"major"`
	University string `json:"university"`
}
