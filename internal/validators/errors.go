// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingUserName     = errors.New("user name is required")
	ErrMissingRealName     = errors.New("real name is required")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrInvalidUserID       = errors.New("invalid user ID")
)
