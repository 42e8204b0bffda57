// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-portfolio server handlers and the client managers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies, client notices or log entries. Keeping them in one place
// ensures the server and the dashboard use the same wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the admin login/password pair
	// does not match. The wording never tells which of the two was wrong.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgDataNotFound is returned when a read, update, or delete operation
	// targets an entry that does not exist.
	MsgDataNotFound = "data not found"

	// MsgInvalidCategory is returned when a resource category is not one of
	// coding, interview, backend or cloud.
	MsgInvalidCategory = "invalid category"

	// MsgInvalidEmail is returned when a contact submission carries an
	// address that cannot be parsed.
	MsgInvalidEmail = "invalid email address"

	// MsgEmptyMessage is returned when a contact submission has no body.
	MsgEmptyMessage = "message must not be empty"

	// MsgTitleRequired is returned when a project or resource has no title.
	MsgTitleRequired = "title is required"

	// MsgAttachmentTooLarge is returned when an uploaded document exceeds
	// the configured size limit.
	MsgAttachmentTooLarge = "attachment is too large"

	// MsgServiceUnavailable is the client notice for transport failures.
	MsgServiceUnavailable = "content service is unavailable"

	// MsgUnexpectedResponse is the client notice for undecodable responses.
	MsgUnexpectedResponse = "unexpected response from content service"
)

// Client notices shown by the dashboard after an operation completes.
const (
	MsgProfileSaved       = "Profile saved successfully"
	MsgProfileSaveFailed  = "Failed to save profile"
	MsgProfileLoadFailed  = "Failed to load profile"
	MsgLoadFailed         = "Failed to load %s"
	MsgCreated            = "%s created"
	MsgCreateFailed       = "Failed to create %s"
	MsgUpdated            = "%s updated"
	MsgUpdateFailed       = "Failed to update %s"
	MsgDeleted            = "%s deleted"
	MsgDeleteFailed       = "Failed to delete %s"
	MsgMessageSent        = "Thanks! Your message has been sent."
	MsgMessageSendFailed  = "Failed to send message"
	MsgNavigationDisabled = "page count is not known yet"
)
