package rule

import "errors"

var (
	ErrRuleNotFound = errors.New("rule not found")
	ErrInvalidScope = errors.New("invalid rule scope")
)
