package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

var ErrTaskIDRequired = &Exception{
	Message:    "task id is required",
	StatusCode: http.StatusBadRequest,
}

var ErrSampleTasksExist = &Exception{
	Message:    "user already has tasks, sample tasks cannot be generated",
	StatusCode: http.StatusBadRequest,
}
