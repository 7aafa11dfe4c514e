package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrBankNotFound       = errors.New("question bank not found")
	ErrBankNotPublished   = errors.New("question bank not published")
	ErrBankHasSubmission  = errors.New("bank already has submissions")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidUploadType  = errors.New("upload must be an image or a PDF")
	ErrPredictionDecode   = errors.New("prediction service returned an unexpected payload")
)
