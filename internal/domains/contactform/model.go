package contactform

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var ErrRelayFailed = errors.New("form relay rejected the submission")

// Submission states mirrored back to the page so it can show exactly one
// of: still sending, sent, or failed with field errors.
const (
	StateSubmitting = "submitting"
	StateSucceeded  = "succeeded"
	StateErrors     = "errors"
)

// SubmitRequest - One contact form submission
type SubmitRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Phone, validation.Length(0, 40)),
		validation.Field(&r.Message, validation.Required, validation.Length(1, 5000)),
	)
}
