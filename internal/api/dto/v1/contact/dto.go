// Package contact defines the wire contract of the public contact API.
package contact

// Response type discriminators. Security errors get their own type so the
// widget can re-render instead of showing a generic failure.
const (
	TypeSuccess       = "success"
	TypeError         = "error"
	TypeSecurityError = "security_error"
)

// Details reports which of the two emails were confirmed sent.
type Details struct {
	AdminNotified    bool `json:"adminNotified"`
	ConfirmationSent bool `json:"confirmationSent"`
}

// SubmitResponse is the single response shape for every pipeline outcome.
type SubmitResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Type      string            `json:"type"`
	Fields    map[string]string `json:"fields,omitempty"`
	Details   *Details          `json:"details,omitempty"`
	ErrorCode string            `json:"error_code,omitempty"`
}

// ResetResponse answers the operator rate-limit reset.
type ResetResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	FilesCleared int    `json:"files_cleared"`
}

// NewSuccessResponse builds the success envelope with delivery details.
func NewSuccessResponse(message string, adminSent, clientSent bool) SubmitResponse {
	return SubmitResponse{
		Success: true,
		Message: message,
		Type:    TypeSuccess,
		Details: &Details{
			AdminNotified:    adminSent,
			ConfirmationSent: clientSent,
		},
	}
}

// NewErrorResponse builds a plain error envelope.
func NewErrorResponse(message string) SubmitResponse {
	return SubmitResponse{
		Success: false,
		Message: message,
		Type:    TypeError,
	}
}

// NewFieldErrorResponse builds the validation-failure envelope carrying the
// complete field-keyed error set.
func NewFieldErrorResponse(message string, fields map[string]string) SubmitResponse {
	return SubmitResponse{
		Success: false,
		Message: message,
		Type:    TypeError,
		Fields:  fields,
	}
}

// NewSecurityErrorResponse builds a CAPTCHA-related rejection.
func NewSecurityErrorResponse(message, errorCode string) SubmitResponse {
	return SubmitResponse{
		Success:   false,
		Message:   message,
		Type:      TypeSecurityError,
		ErrorCode: errorCode,
	}
}

// NewDeliveryFailureResponse reports that the operator notification could
// not be sent.
func NewDeliveryFailureResponse(message string) SubmitResponse {
	return SubmitResponse{
		Success: false,
		Message: message,
		Type:    TypeError,
		Details: &Details{},
	}
}
