package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	verr := apperrors.NewValidationError()

	if utf8.RuneCountInString(strings.TrimSpace(r.Name)) < minNameLength {
		verr.Add("name", "name must be at least 3 characters long")
	}
	if msg := emailProblem(strings.TrimSpace(r.Email)); msg != "" {
		verr.Add("email", msg)
	}
	if r.Password == "" {
		verr.Add("password", "password is required")
	} else if r.Password != r.ConfirmPassword {
		verr.Add("confirmPassword", "passwords do not match")
	}

	return verr.OrNil()
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	verr := apperrors.NewValidationError()
	if strings.TrimSpace(r.Email) == "" {
		verr.Add("email", "email is required")
	}
	if r.Password == "" {
		verr.Add("password", "password is required")
	}
	return verr.OrNil()
}

// emailProblem describes why email is not acceptable, or returns "".
func emailProblem(email string) string {
	if !emailPattern.MatchString(email) {
		return "email must look like name@domain.tld"
	}

	local, domain, _ := strings.Cut(email, "@")
	switch {
	case len(local) > 64:
		return "the part before @ must be 1 to 64 characters long"
	case len(domain) < 3 || len(domain) > 253:
		return "the part after @ must be 3 to 253 characters long"
	case strings.HasPrefix(domain, "."):
		return "the part after @ must not start with a dot"
	case strings.HasSuffix(domain, "."):
		return "the part after @ must not end with a dot"
	}
	return ""
}
