package apperror

import "errors"

var ErrInputClosed = errors.New("input is closed")
