package errors

import "net/http"

var ErrInvalidPayload = &Exception{
	Message:    "invalid request payload",
	StatusCode: http.StatusBadRequest,
}

var ErrTooManyRequests = &Exception{
	Message:    "too many requests",
	StatusCode: http.StatusTooManyRequests,
}
