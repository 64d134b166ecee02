package validators

import (
	"context"
	"errors"
	"regexp"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// MinPasswordLength is the minimum number of characters in a password.
const MinPasswordLength = 6

// emailPattern is deliberately loose: something, "@", something, ".", something.
var emailPattern = regexp.MustCompile(`.+@.+\..+`)

// Messages reported for each violated rule.
const (
	MsgUsernameRequired = "Please provide a username"
	MsgEmailRequired    = "Please provide an email"
	MsgEmailInvalid     = "Please fill a valid email address"
	MsgPasswordRequired = "Please provide a password"
	MsgPasswordTooShort = "Password must be at least 6 characters"
)

// UserValidator validates registration and login requests.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.RegisterRequest and models.LoginRequest (by value or
// pointer). With no fields given, every field of the request is checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldUsername:
			rules = append(rules, validation.Field(&request.Username, validation.Required.Error(MsgUsernameRequired)))
		case FieldEmail:
			rules = append(rules, emailRules(&request.Email))
		case FieldPassword:
			rules = append(rules, passwordRules(&request.Password))
		default:
			return ErrUnknownField
		}
	}

	return validation.ValidateStruct(&request, rules...)
}

func (v *UserValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldEmail:
			rules = append(rules, validation.Field(&request.Email, validation.Required.Error(MsgEmailRequired)))
		case FieldPassword:
			rules = append(rules, validation.Field(&request.Password, validation.Required.Error(MsgPasswordRequired)))
		default:
			return ErrUnknownField
		}
	}

	return validation.ValidateStruct(&request, rules...)
}

func emailRules(email *string) *validation.FieldRules {
	return validation.Field(email,
		validation.Required.Error(MsgEmailRequired),
		validation.Match(emailPattern).Error(MsgEmailInvalid),
	)
}

func passwordRules(password *string) *validation.FieldRules {
	return validation.Field(password,
		validation.Required.Error(MsgPasswordRequired),
		validation.RuneLength(MinPasswordLength, 0).Error(MsgPasswordTooShort),
	)
}

// Messages flattens the field errors of err into a list of messages ordered
// by field name. It returns nil when err carries no field errors.
func Messages(err error) []string {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	keys := make([]string, 0, len(fieldErrs))
	for k, e := range fieldErrs {
		if e != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		messages = append(messages, fieldErrs[k].Error())
	}

	return messages
}
