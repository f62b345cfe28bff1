package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// inputValidate is shared by every session; it carries the "placement" rule.
var inputValidate *validator.Validate

func init() {
	inputValidate = validator.New()
	_ = inputValidate.RegisterValidation("placement", validatePlacement)
}

// validatePlacement accepts strings made only of the digits 0, 1 and 2.
func validatePlacement(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '2' {
			return false
		}
	}
	return true
}

// ErrInvalidInput matches every *ValidationError via errors.Is.
var ErrInvalidInput = errors.New("session: invalid input")

// ValidationError lists every rule a turn's input broke, in field order.
type ValidationError struct {
	Rules []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Rules, "; ") }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

var ruleMessages = map[string]string{
	"Word.len":           "Word must be 5 letters long!",
	"Feedback.len":       "Placement must be 5 letters long!",
	"Feedback.placement": "Wrong syntax for placement",
}

// Validate checks in after normalization. It returns nil or a *ValidationError.
func Validate(in Input) error {
	err := inputValidate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		msg, ok := ruleMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
		}
		ve.Rules = append(ve.Rules, msg)
	}
	return ve
}

// normalize trims both fields and lowercases the guess.
func (in Input) normalize() Input {
	in.Word = strings.ToLower(strings.TrimSpace(in.Word))
	in.Feedback = strings.TrimSpace(in.Feedback)
	return in
}
