package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Message:    "you must be logged in to access this resource",
	StatusCode: http.StatusUnauthorized,
}

var ErrForbidden = &Exception{
	Message:    "you are not allowed to access this resource",
	StatusCode: http.StatusForbidden,
}

var ErrInvalidCredentials = &Exception{
	Message:    "invalid email or password",
	StatusCode: http.StatusUnauthorized,
}

var ErrEmailTaken = &Exception{
	Message:    "an account with this email already exists",
	StatusCode: http.StatusConflict,
}

var ErrUserNotFound = &Exception{
	Message:    "user not found",
	StatusCode: http.StatusNotFound,
}
