package domain

import "errors"

var ErrUnknownActivity = errors.New("unknown activity type")
