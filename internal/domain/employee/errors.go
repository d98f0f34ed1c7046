package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeNumberExists = errors.New("employee number already exists")
	ErrDocumentNotFound     = errors.New("employee document not found")
	ErrNoHireDate           = errors.New("employee has no hire date")
)
