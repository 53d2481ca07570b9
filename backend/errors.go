package backend

import (
	"errors"
	"fmt"
)

// Kind classifies upstream failures by how the dashboards must react to them.
type Kind string

const (
	// KindPermissionDenied maps a 403: not retryable without a role change.
	KindPermissionDenied Kind = "permission_denied"
	// KindNotFound maps a 404. For schedules this is the expected
	// "no schedule yet" case, not a failure.
	KindNotFound Kind = "not_found"
	// KindMalformed maps a 400; the server detail is preserved when present.
	KindMalformed Kind = "malformed_request"
	// KindSessionExpired maps a 401. Handlers propagate it as a bare 401 so
	// the dashboards' global session-expiry handling catches it.
	KindSessionExpired Kind = "session_expired"
	// KindUnknown covers everything else, including transport failures.
	KindUnknown Kind = "unknown"
)

// Error is a classified upstream failure carrying a message fit for the UI.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AsError unwraps err into a classified backend error.
func AsError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsKind reports whether err is a backend error of the given kind.
func IsKind(err error, kind Kind) bool {
	be, ok := AsError(err)
	return ok && be.Kind == kind
}

func classify(status int, detail string) *Error {
	switch status {
	case 401:
		return &Error{Kind: KindSessionExpired, Status: status, Message: "Session expired, please sign in again", Detail: detail}
	case 403:
		return &Error{Kind: KindPermissionDenied, Status: status, Message: "You do not have permission to perform this action", Detail: detail}
	case 404:
		return &Error{Kind: KindNotFound, Status: status, Message: "The requested record was not found", Detail: detail}
	case 400:
		msg := "The request was rejected by the clinic backend"
		if detail != "" {
			msg = detail
		}
		return &Error{Kind: KindMalformed, Status: status, Message: msg, Detail: detail}
	default:
		return &Error{Kind: KindUnknown, Status: status, Message: "Something went wrong, please try again", Detail: detail}
	}
}

func transportError(err error) *Error {
	return &Error{Kind: KindUnknown, Message: "The clinic backend is unreachable, please try again", Detail: err.Error()}
}
