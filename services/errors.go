package services

import "errors"

// ErrFamilyNotFound транслируется обработчиками в HTTP 404.
var ErrFamilyNotFound = errors.New("family not found")
