package user

import "errors"

var (
	ErrUnknownRole            = errors.New("role is not recognized")
	ErrInvalidToken           = errors.New("invalid or missing access token")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrEmployeeRoleRequired   = errors.New("employee role required")
	ErrForbidden              = errors.New("not allowed to access this employee's records")
)
