package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateSchemaName = errors.New("schema name already exists")
	ErrUnknownStrategy     = errors.New("unknown extraction strategy")
)
