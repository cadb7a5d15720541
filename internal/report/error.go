package report

import "github.com/friendsofgo/errors"

var (
	ErrQuestionRequired   = errors.New("question must not be empty")
	ErrLLMUnavailable     = errors.New("language model is not configured")
	ErrStorageUnavailable = errors.New("report storage is not configured")
)
