// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/app"
)

// mapGatewayError translates a gateway failure into a client service error.
// The original error stays in the chain.
func mapGatewayError(err error) error {
	if err == nil {
		return nil
	}

	var (
		transportErr *adapter.TransportError
		decodeErr    *adapter.DecodeError
		responseErr  *adapter.ResponseError
	)

	switch {
	case errors.As(err, &transportErr):
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	case errors.As(err, &decodeErr):
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrRemoteUnauthorized, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRemoteNotFound, err)
	case errors.As(err, &responseErr):
		return fmt.Errorf("%w: %w", ErrRemoteRejected, err)
	}

	return err
}

// gatewayErrorDetail returns the wording shown after a failed operation: the
// service's own message when it sent one.
func gatewayErrorDetail(err error) string {
	var (
		transportErr *adapter.TransportError
		decodeErr    *adapter.DecodeError
		responseErr  *adapter.ResponseError
	)

	switch {
	case errors.As(err, &responseErr):
		return responseErr.Message
	case errors.As(err, &transportErr):
		return app.MsgServiceUnavailable
	case errors.As(err, &decodeErr):
		return app.MsgUnexpectedResponse
	}

	return err.Error()
}

// failureNotice joins an operation summary with the error detail.
func failureNotice(summary string, err error) Notice {
	return Notice{Text: summary + ": " + gatewayErrorDetail(err), IsError: true}
}
