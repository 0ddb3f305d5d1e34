// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidRelayURL = errors.New("invalid mail relay url")

	ErrRelayRejected     = errors.New("mail relay rejected the message")
	ErrRelayUnauthorized = errors.New("mail relay refused the credentials")
	ErrRelayUnavailable  = errors.New("mail relay unavailable")
	ErrRelayRequest      = errors.New("mail relay request failed")

	ErrNoRecipient = errors.New("notification has no recipient")
)
