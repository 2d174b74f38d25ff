package domain

import (
	"fmt"
	"strings"
	"time"
)

// Theme is the UI theme chosen by a user.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch theme := Theme(strings.ToLower(strings.TrimSpace(s))); theme {
	case ThemeLight, ThemeDark:
		return theme, nil
	default:
		return "", fmt.Errorf("invalid theme %q, must be one of: %s, %s", s, ThemeLight, ThemeDark)
	}
}

// Preferences are the user's notification and display settings.
type Preferences struct {
	Notifications bool  `json:"notifications" yaml:"notifications"`
	Theme         Theme `json:"theme" yaml:"theme"`
}

// DefaultPreferences returns the preferences assigned to new profiles.
func DefaultPreferences() Preferences {
	return Preferences{Notifications: true, Theme: ThemeLight}
}

// PreferencesPatch is a partial preferences update. Nil fields are kept.
type PreferencesPatch struct {
	Notifications *bool  `json:"notifications,omitempty"`
	Theme         *Theme `json:"theme,omitempty"`
}

// IsEmpty reports whether the patch carries no field.
func (p PreferencesPatch) IsEmpty() bool {
	return p.Notifications == nil && p.Theme == nil
}

// Merge applies the patch field by field.
func (p Preferences) Merge(patch PreferencesPatch) Preferences {
	if patch.Notifications != nil {
		p.Notifications = *patch.Notifications
	}
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	return p
}

// User is a profile keyed by the identity provider subject.
// Only preferences change after creation.
type User struct {
	userID      string
	email       string
	phoneNumber string
	preferences Preferences
	createdAt   time.Time
	updatedAt   *time.Time
}

// UserRecord is the plain, serializable representation of a User.
type UserRecord struct {
	UserID      string      `json:"userId" yaml:"userId"`
	Email       string      `json:"email" yaml:"email"`
	PhoneNumber string      `json:"phoneNumber,omitempty" yaml:"phoneNumber,omitempty"`
	Preferences Preferences `json:"preferences" yaml:"preferences"`
	CreatedAt   time.Time   `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   *time.Time  `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// NewUser builds a profile. The user ID comes from the identity provider.
func NewUser(userID, email, phoneNumber string, preferences Preferences, now time.Time) *User {
	return &User{
		userID:      userID,
		email:       email,
		phoneNumber: phoneNumber,
		preferences: preferences,
		createdAt:   now.UTC(),
	}
}

// UserFromRecord rebuilds a User from its persisted form.
func UserFromRecord(r UserRecord) *User {
	u := &User{
		userID:      r.UserID,
		email:       r.Email,
		phoneNumber: r.PhoneNumber,
		preferences: r.Preferences,
		createdAt:   r.CreatedAt.UTC(),
	}
	if r.UpdatedAt != nil {
		updated := r.UpdatedAt.UTC()
		u.updatedAt = &updated
	}
	return u
}

// UserID returns the identity provider subject.
func (u *User) UserID() string { return u.userID }

// Email returns the contact email.
func (u *User) Email() string { return u.email }

// PhoneNumber returns the optional phone number, empty when unknown.
func (u *User) PhoneNumber() string { return u.phoneNumber }

// Preferences returns a copy of the user's preferences.
func (u *User) Preferences() Preferences { return u.preferences }

// CreatedAt returns the creation time.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the time of the last mutation, nil if never mutated.
func (u *User) UpdatedAt() *time.Time {
	if u.updatedAt == nil {
		return nil
	}
	updated := *u.updatedAt
	return &updated
}

// UpdatePreferences merges the patch into the current preferences.
func (u *User) UpdatePreferences(patch PreferencesPatch, now time.Time) {
	u.preferences = u.preferences.Merge(patch)
	u.touch(now)
}

func (u *User) touch(now time.Time) {
	now = now.UTC()
	if now.Before(u.createdAt) {
		now = u.createdAt
	}
	u.updatedAt = &now
}

// Record returns the plain representation of the user.
func (u *User) Record() UserRecord {
	return UserRecord{
		UserID:      u.userID,
		Email:       u.email,
		PhoneNumber: u.phoneNumber,
		Preferences: u.preferences,
		CreatedAt:   u.createdAt,
		UpdatedAt:   u.UpdatedAt(),
	}
}
