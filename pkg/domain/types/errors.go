package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")
	ErrConfig        = goerr.New("invalid configuration")
	ErrAuth          = goerr.New("authentication failed")
	ErrInvalidRule   = goerr.New("invalid labeling rule")
)
