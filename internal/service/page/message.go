package page

import (
	"errors"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

// UserMessage turns an error into the text shown on the page.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var tf *domain.TaskFailure
	if errors.As(err, &tf) {
		return tf.UserMessage()
	}

	switch {
	case errors.Is(err, domain.ErrUnsupportedMediaType):
		return "Please upload a PDF file only"
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return "File is too large"
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		return ve.Errors[0].Message
	}

	switch {
	case errors.Is(err, domain.ErrActionInFlight):
		return "Please wait for the current request to finish"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "Service is temporarily unavailable, please try again"
	case errors.Is(err, domain.ErrUnauthorized):
		return "You are not allowed to do that"
	}
	return "Something went wrong, please try again"
}
