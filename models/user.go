// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// User is one site account. Preferences live in a separate key/value set,
// see [UserPreferences].
type User struct {
	// UserID is the numeric account identifier. Zero means "not yet stored".
	UserID int64 `json:"user_id"`

	// UserName is the unique sign-in name.
	UserName string `json:"user_name"`

	// RealName is the display name shown on screen.
	RealName string `json:"real_name"`

	// Email is the unique contact address.
	Email string `json:"email"`

	// PasswordHash is an opaque password verifier. It is never rendered.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Stored preference keys.
const (
	PrefTheme              = "theme"
	PrefLanguage           = "language"
	PrefTimeZone           = "TIMEZONE"
	PrefContactMethod      = "contactmethod"
	PrefComment            = "comment"
	PrefAutoAccept         = "auto_accept"
	PrefVisibleOnline      = "visibleonline"
	PrefVerified           = "verified"
	PrefVerifiedByAdmin    = "verified_by_admin"
	PrefCanAdmin           = "canadmin"
	PrefRegTimestamp       = "reg_timestamp"
	PrefSessionTime        = "sessiontime"
	PrefAdminUsersPageSize = "admin_users_page_size"
)

// DefaultAdminUsersPageSize is the user list page length used until an
// administrator picks another one.
const DefaultAdminUsersPageSize = 10

// UserPreferences is the typed view over a user's key/value settings.
// Values are converted from and to their stored string form only by
// [UserPreferencesFromSettings] and [UserPreferences.Settings].
type UserPreferences struct {
	Theme         string
	Language      string
	TimeZone      string
	ContactMethod string
	Comment       string

	AutoAccept      bool
	VisibleOnline   bool
	Verified        bool
	VerifiedByAdmin bool
	CanAdmin        bool

	// RegTimestamp is the registration time in unix seconds.
	RegTimestamp int64

	// SessionTime is the last activity time in unix seconds; 0 means the
	// account has never signed in.
	SessionTime int64

	AdminUsersPageSize int
}

// UserPreferencesFromSettings decodes stored settings. Missing or malformed
// values fall back to their documented defaults.
func UserPreferencesFromSettings(settings map[string]string) UserPreferences {
	prefs := UserPreferences{
		Theme:              settings[PrefTheme],
		Language:           settings[PrefLanguage],
		TimeZone:           settings[PrefTimeZone],
		ContactMethod:      settings[PrefContactMethod],
		Comment:            settings[PrefComment],
		AutoAccept:         ParseFlag(settings[PrefAutoAccept]),
		VisibleOnline:      ParseFlag(settings[PrefVisibleOnline]),
		Verified:           ParseFlag(settings[PrefVerified]),
		VerifiedByAdmin:    ParseFlag(settings[PrefVerifiedByAdmin]),
		CanAdmin:           ParseFlag(settings[PrefCanAdmin]),
		RegTimestamp:       parseInt64(settings[PrefRegTimestamp]),
		SessionTime:        parseInt64(settings[PrefSessionTime]),
		AdminUsersPageSize: DefaultAdminUsersPageSize,
	}

	if size, err := strconv.Atoi(settings[PrefAdminUsersPageSize]); err == nil && size > 0 {
		prefs.AdminUsersPageSize = size
	}

	return prefs
}

// Settings encodes the editable preferences in their stored form.
// Timestamps and the page size are not included: they are maintained by
// dedicated code paths, never by the edit form.
func (p UserPreferences) Settings() map[string]string {
	return map[string]string{
		PrefTheme:           p.Theme,
		PrefLanguage:        p.Language,
		PrefTimeZone:        p.TimeZone,
		PrefContactMethod:   p.ContactMethod,
		PrefComment:         p.Comment,
		PrefAutoAccept:      FormatFlag(p.AutoAccept),
		PrefVisibleOnline:   FormatFlag(p.VisibleOnline),
		PrefVerified:        FormatFlag(p.Verified),
		PrefVerifiedByAdmin: FormatFlag(p.VerifiedByAdmin),
		PrefCanAdmin:        FormatFlag(p.CanAdmin),
	}
}

// CanSignIn reports whether the account may sign in. Both the email
// verification and the administrator approval are required.
func (p UserPreferences) CanSignIn() bool {
	return p.Verified && p.VerifiedByAdmin
}

// LastActivity returns the last session time, or the registration time for
// accounts that never signed in.
func (p UserPreferences) LastActivity() time.Time {
	if p.SessionTime == 0 {
		return time.Unix(p.RegTimestamp, 0)
	}
	return time.Unix(p.SessionTime, 0)
}

// Registered returns the registration time.
func (p UserPreferences) Registered() time.Time {
	return time.Unix(p.RegTimestamp, 0)
}

// FormatFlag encodes a boolean preference.
func FormatFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// ParseFlag decodes a boolean preference; anything but "" and "0" is true.
func ParseFlag(s string) bool {
	return s != "" && s != "0"
}

func parseInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
