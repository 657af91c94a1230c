package ruleinput

import "errors"

var (
	ErrRuleInputNotFound   = errors.New("rule input not found")
	ErrRuleInputCodeExists = errors.New("rule input code already exists")
	ErrInvalidTypeConcept  = errors.New("invalid type concept")
	ErrInvalidCategory     = errors.New("invalid rule input category")
)
