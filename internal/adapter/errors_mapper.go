// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapRelayError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrRelayUnauthorized, body)
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrRelayUnavailable, code, body)
	case code >= http.StatusBadRequest:
		return fmt.Errorf("%w: http %d: %s", ErrRelayRejected, code, body)
	default:
		return fmt.Errorf("%w: unexpected http %d", ErrRelayRequest, code)
	}
}
