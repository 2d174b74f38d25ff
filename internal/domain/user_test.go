package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input   string
		want    Theme
		wantErr bool
	}{
		{input: "light", want: ThemeLight},
		{input: "DARK", want: ThemeDark},
		{input: " dark ", want: ThemeDark},
		{input: "blue", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTheme(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreferencesMerge(t *testing.T) {
	base := DefaultPreferences()
	assert.Equal(t, Preferences{Notifications: true, Theme: ThemeLight}, base)

	dark := ThemeDark
	off := false

	assert.Equal(t, Preferences{Notifications: true, Theme: ThemeDark},
		base.Merge(PreferencesPatch{Theme: &dark}))
	assert.Equal(t, Preferences{Notifications: false, Theme: ThemeLight},
		base.Merge(PreferencesPatch{Notifications: &off}))
	assert.Equal(t, base, base.Merge(PreferencesPatch{}))
	assert.True(t, PreferencesPatch{}.IsEmpty())
	assert.False(t, PreferencesPatch{Theme: &dark}.IsEmpty())
}

func TestNewUser(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	user := NewUser("sub-1", "a@example.com", "", DefaultPreferences(), now)

	assert.Equal(t, "sub-1", user.UserID())
	assert.Equal(t, "a@example.com", user.Email())
	assert.Empty(t, user.PhoneNumber())
	assert.Equal(t, DefaultPreferences(), user.Preferences())
	assert.Equal(t, now, user.CreatedAt())
	assert.Nil(t, user.UpdatedAt())
}

func TestUserUpdatePreferences(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	user := NewUser("sub-1", "a@example.com", "+15550100", DefaultPreferences(), now)

	dark := ThemeDark
	user.UpdatePreferences(PreferencesPatch{Theme: &dark}, now.Add(time.Hour))

	assert.Equal(t, Preferences{Notifications: true, Theme: ThemeDark}, user.Preferences())
	assert.Equal(t, "a@example.com", user.Email())
	assert.Equal(t, "+15550100", user.PhoneNumber())
	require.NotNil(t, user.UpdatedAt())
	assert.Equal(t, now.Add(time.Hour), *user.UpdatedAt())
}

func TestUserRecordRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	user := NewUser("sub-1", "a@example.com", "+15550100", DefaultPreferences(), now)
	off := false
	user.UpdatePreferences(PreferencesPatch{Notifications: &off}, now.Add(time.Minute))

	record := user.Record()
	assert.Equal(t, record, UserFromRecord(record).Record())
}
