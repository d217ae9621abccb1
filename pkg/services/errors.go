package services

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a typed service error carrying the HTTP status and the stable
// machine-readable code surfaced to API clients.
type Error struct {
	Type    string
	Code    string
	Message string
	Status  int
	Param   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsError extracts a *Error from err, if present.
func AsError(err error) (*Error, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// NotFound reports that the identified resource does not exist.
func NotFound(resource, id string) *Error {
	return &Error{
		Type:    "not_found",
		Code:    strings.ToUpper(strings.ReplaceAll(resource, " ", "_")) + "_NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found.", resource, id),
		Status:  404,
	}
}

// InvalidMode reports an unknown assessment mode.
func InvalidMode() *Error {
	return &Error{
		Type:    "validation_error",
		Code:    "INVALID_MODE",
		Message: "Mode must be 'lightweight' or 'robust'.",
		Status:  400,
		Param:   "mode",
	}
}

// InvalidDepth reports an unknown scan depth.
func InvalidDepth() *Error {
	return &Error{
		Type:    "validation_error",
		Code:    "INVALID_DEPTH",
		Message: "Depth must be 'quick', 'standard', or 'deep'.",
		Status:  400,
		Param:   "depth",
	}
}

// MissingRepoURL reports a lightweight request with no code source.
func MissingRepoURL() *Error {
	return &Error{
		Type:    "validation_error",
		Code:    "MISSING_REPO_URL",
		Message: "Lightweight mode requires 'repo_url' or 'files'.",
		Status:  400,
	}
}

// MissingTunnelSession reports a robust request with no target source.
func MissingTunnelSession() *Error {
	return &Error{
		Type:    "validation_error",
		Code:    "MISSING_TUNNEL_SESSION",
		Message: "Robust mode requires 'tunnel_session_id'.",
		Status:  400,
	}
}

// TunnelNotConnected reports a robust request against a dead tunnel.
func TunnelNotConnected() *Error {
	return &Error{
		Type:    "tunnel_error",
		Code:    "TUNNEL_NOT_CONNECTED",
		Message: "Tunnel session is not connected. Run 'vibecheck connect <port>' first.",
		Status:  400,
	}
}

// InvalidAgent reports an unknown agent name in a robust roster.
func InvalidAgent(name string) *Error {
	return &Error{
		Type:    "validation_error",
		Code:    "INVALID_AGENT",
		Message: fmt.Sprintf("Unknown agent '%s'. Valid agents: recon, auth, injection, config.", name),
		Status:  400,
		Param:   "agents",
	}
}

// AssessmentInProgress reports a rerun attempt on a live assessment.
func AssessmentInProgress() *Error {
	return &Error{
		Type:    "conflict",
		Code:    "ASSESSMENT_IN_PROGRESS",
		Message: "Assessment is still in progress. Wait for completion before re-running.",
		Status:  400,
	}
}

// LogsNotAvailable reports a log listing against a lightweight assessment.
func LogsNotAvailable() *Error {
	return &Error{
		Type:    "validation_error",
		Code:    "LOGS_NOT_AVAILABLE",
		Message: "Agent logs are only available for robust mode assessments.",
		Status:  400,
	}
}

// CloneFailed reports a repository that could not be acquired.
func CloneFailed(url, reason string) *Error {
	return &Error{
		Type:    "external_error",
		Code:    "CLONE_FAILED",
		Message: fmt.Sprintf("Failed to clone '%s': %s", url, reason),
		Status:  502,
	}
}

// DuplicateIdempotencyKey reports an idempotency key reused with different
// parameters.
func DuplicateIdempotencyKey() *Error {
	return &Error{
		Type:    "conflict",
		Code:    "DUPLICATE_IDEMPOTENCY_KEY",
		Message: "Idempotency key already used with different parameters.",
		Status:  409,
	}
}

// TargetUnreachable reports a tunnel whose local application did not answer.
func TargetUnreachable() *Error {
	return &Error{
		Type:    "tunnel_error",
		Code:    "TARGET_UNREACHABLE",
		Message: "Could not reach target application through tunnel.",
		Status:  502,
	}
}
