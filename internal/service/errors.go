// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrAccountNotApproved  = errors.New("account is not verified and approved")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrForbidden             = errors.New("forbidden")
	ErrNotTopGivenNamesBlock = errors.New("block is not a top given names block")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
