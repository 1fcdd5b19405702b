package api

import "errors"

// One fixed condition per operation. Callers match with errors.Is; the
// wrapped message carries the status code or cause but no structured
// detail beyond that.
var (
	ErrLoadFailed   = errors.New("load failed")
	ErrCreateFailed = errors.New("create failed")
	ErrUpdateFailed = errors.New("update failed")
	ErrDeleteFailed = errors.New("delete failed")
)
