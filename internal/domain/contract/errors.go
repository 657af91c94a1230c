package contract

import "errors"

var (
	ErrContractNotFound   = errors.New("contract not found")
	ErrUnknownSchedulePay = errors.New("unknown schedule pay")
)
