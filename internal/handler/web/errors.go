package web

import "errors"

var errUnknownPage = errors.New("unknown page")
