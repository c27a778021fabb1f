package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Validation limits for the contact form.
const (
	maxEmailLen   = 320
	maxMessageLen = 10_000
)

// Contact form error codes. A code travels back to the form as the error
// query parameter; contactErrorMessage maps it to the text shown there.
const (
	errEmailRequired   = "email_required"
	errEmailTooLong    = "email_too_long"
	errEmailInvalid    = "email_invalid"
	errMessageRequired = "message_required"
	errMessageTooLong  = "message_too_long"
)

// validateContact checks contact form inputs and returns the code of the
// first failure, or "" when the input is acceptable.
func validateContact(email, message string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return errEmailRequired
	}
	if utf8.RuneCountInString(email) > maxEmailLen {
		return errEmailTooLong
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errEmailInvalid
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return errMessageRequired
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return errMessageTooLong
	}

	return ""
}

// contactErrorMessage maps a contact redirect error code to the message
// shown in the form. Codes outside the validation set (the persistence
// path redirects with error=1) get a generic message.
func contactErrorMessage(code string) string {
	switch code {
	case errEmailRequired:
		return "Email is required."
	case errEmailTooLong:
		return "Email address is too long."
	case errEmailInvalid:
		return "Email address is not valid."
	case errMessageRequired:
		return "Message is required."
	case errMessageTooLong:
		return "Message is too long (max 10,000 characters)."
	default:
		return "Something went wrong. Please try again."
	}
}
