// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserForm is a submitted user edit form. UserID 0 creates a new account.
type UserForm struct {
	UserID   int64
	UserName string
	RealName string
	Email    string
	Pass1    string
	Pass2    string

	Theme         string
	Language      string
	TimeZone      string
	ContactMethod string
	Comment       string

	AutoAccept    bool
	CanAdmin      bool
	VisibleOnline bool
	Verified      bool
	Approved      bool

	// Trees holds the per-tree fields keyed by tree id.
	Trees map[int64]TreeUserForm
}

// TreeUserForm holds the submitted per-tree fields of a [UserForm].
type TreeUserForm struct {
	IndividualXref         string
	Role                   string
	RelationshipPathLength string
}

// SaveResult reports what a user save did.
type SaveResult struct {
	Outcome Outcome
	Message string
	UserID  int64
}

// UserEditView is the data shown by the user edit form.
type UserEditView struct {
	User        User
	Preferences UserPreferences
	Trees       []Tree

	// TreePreferences is keyed by tree id.
	TreePreferences map[int64]TreeUserPreferences
	IsNew           bool
}

// SortSpec is one column of a datatable ordering request.
type SortSpec struct {
	Column int
	Dir    string
}

// MaxUserListLength bounds the page length a grid request may ask for.
const MaxUserListLength = 1000

// UserListQuery is a server-side paging request of the user list.
type UserListQuery struct {
	Draw   int
	Search string
	Start  int

	// Length 0 means "no limit".
	Length int
	Order  []SortSpec
}

// UserListRow is one user of the listing, before presentation.
type UserListRow struct {
	UserID          int64
	UserName        string
	RealName        string
	Email           string
	Language        string
	RegTimestamp    int64
	SessionTime     int64
	Verified        bool
	VerifiedByAdmin bool
}

// registrationGrace is how long a new account may stay unverified.
const registrationGrace = 7 * 24 * time.Hour

// RegistrationOverdue reports whether the account registered more than seven
// days before now and still has not verified its email.
func (r UserListRow) RegistrationOverdue(now time.Time) bool {
	return !r.Verified && now.Sub(time.Unix(r.RegTimestamp, 0)) > registrationGrace
}

// UserListResult is one page of the user list with its counts.
type UserListResult struct {
	Draw            int
	RecordsTotal    int
	RecordsFiltered int
	Rows            []UserListRow
}

// UserListPage is the JSON paging contract consumed by the grid widget.
type UserListPage struct {
	Draw            int        `json:"draw"`
	RecordsTotal    int        `json:"recordsTotal"`
	RecordsFiltered int        `json:"recordsFiltered"`
	Data            [][]string `json:"data"`
}

// CleanupReason classifies why an account was flagged for deletion.
type CleanupReason int

const (
	// CleanupInactive flags approved accounts idle longer than the threshold.
	CleanupInactive CleanupReason = iota + 1
	// CleanupUnverified flags accounts that did not verify their email within seven days.
	CleanupUnverified
	// CleanupNotApproved flags verified accounts never approved by an administrator.
	CleanupNotApproved
)

// Cleanup month threshold bounds.
const (
	MinCleanupMonths     = 1
	MaxCleanupMonths     = 12
	DefaultCleanupMonths = 6
)

// CleanupCandidate is one flagged account of the cleanup report.
type CleanupCandidate struct {
	User   User
	Reason CleanupReason

	// LastActivity is set for [CleanupInactive] candidates.
	LastActivity time.Time

	// DeleteByDefault is the initial state of the deletion checkbox.
	DeleteByDefault bool
}

// CleanupReport is phase one of the inactivity cleanup.
type CleanupReport struct {
	Months     int
	Candidates []CleanupCandidate
}

// Notification is an email ready to be handed to the mail collaborator.
type Notification struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	ToName    string `json:"to_name"`
	ToEmail   string `json:"to_email"`
	Subject   string `json:"subject"`
	TextBody  string `json:"text"`
	HTMLBody  string `json:"html"`
}
