package llm

import "github.com/friendsofgo/errors"

var (
	ErrAPIKeyRequired = errors.New("llm: api key is required")
	ErrEmptyResponse  = errors.New("llm: model returned an empty response")
)
