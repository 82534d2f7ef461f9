package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrResponse is the error envelope returned by every failing endpoint.
type ErrResponse struct {
	Error string `json:"error"`
}

func Error(msg string) ErrResponse {
	return ErrResponse{Error: msg}
}

func ValidationError(errs validator.ValidationErrors) ErrResponse {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "gt":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return ErrResponse{Error: strings.Join(errMsgs, ", ")}
}
