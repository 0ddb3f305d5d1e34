// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-tree-admin services, handlers and the admin CLI.
//
// All Msg* constants are human-readable strings shown to administrators as
// flash messages or written into HTTP response bodies. Keeping them in one
// place ensures consistent wording throughout the site.
package app

const (
	// MsgDuplicateUserName is shown when a new account would reuse an
	// existing user name (case-insensitive).
	MsgDuplicateUserName = "Duplicate username. A user with that username already exists. Please choose another username."

	// MsgDuplicateEmail is shown when a new account would reuse an existing
	// email address (case-insensitive).
	MsgDuplicateEmail = "Duplicate email address. A user with that email already exists."

	// MsgPasswordsDoNotMatch is shown when the two password fields differ.
	MsgPasswordsDoNotMatch = "The passwords do not match."

	// MsgPasswordTooShort is shown when a new password is shorter than
	// MinPasswordLength characters.
	MsgPasswordTooShort = "Passwords must contain at least 6 characters."

	// MsgMissingUserName is shown when a user is saved without a user name.
	MsgMissingUserName = "You must enter a username."

	// MsgMissingRealName is shown when a user is saved without a real name.
	MsgMissingRealName = "You must enter a real name."

	// MsgCannotDeleteSelf is shown when an administrator tries to delete
	// their own account from the user list.
	MsgCannotDeleteSelf = "You cannot delete your own account."

	// MsgUserCreated and MsgUserUpdated are shown after a successful save.
	MsgUserCreated = "The user %s has been created."
	MsgUserUpdated = "The user %s has been updated."

	// MsgPasswordNotChanged is appended to MsgUserUpdated when a password was
	// typed on the edit form but rejected.
	MsgPasswordNotChanged = "The password was not changed."

	// MsgUserDeleted is shown after a user was deleted.
	MsgUserDeleted = "The user %s has been deleted."

	// MsgPreferencesSaved is shown after the module access levels were saved.
	MsgPreferencesSaved = "The preferences for the module have been updated."

	// MsgInvalidLoginPassword is returned when the supplied user name and
	// password do not match any account allowed to sign in.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgAccountNotApproved is returned when the account exists but was not
	// yet verified and approved.
	MsgAccountNotApproved = "This account has not been approved. Please wait for an administrator to approve it."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgAccessDenied is returned when the actor may not use the page.
	MsgAccessDenied = "access denied"

	// MsgNotFound is returned when the requested user, tree or block does
	// not exist.
	MsgNotFound = "not found"

	// MsgInvalidDataProvided is returned when a request parameter cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"
)

// MinPasswordLength is the shortest password accepted for an account.
const MinPasswordLength = 6
