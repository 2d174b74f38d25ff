package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/client"
	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/domain"
	"github.com/taskapp/taskapp/internal/output"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Profile commands for the signed-in user",
}

var currentUserCmd = &cobra.Command{
	Use:   "me",
	Short: "Show your profile",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		executeWithClient(cmd, func(ctx context.Context, c client.Interface) error {
			return NewUsersService(c, NewOutputWrapper(), outputFormat).ShowCurrentUser(ctx)
		})
	},
}

var createProfileCmd = &cobra.Command{
	Use:   "create",
	Short: "Create your profile",
	Long: `Create your profile. Profiles are normally created when a sign-up is confirmed;
use this when that step did not run.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		req := api.CreateUserProfileRequest{Email: profileEmail, PhoneNumber: profilePhone}
		executeWithClient(cmd, func(ctx context.Context, c client.Interface) error {
			return NewUsersService(c, NewOutputWrapper(), outputFormat).CreateProfile(ctx, req)
		})
	},
}

var preferencesCmd = &cobra.Command{
	Use:   "preferences",
	Short: "Update your preferences",
	Example: fmt.Sprintf(`  - %s users preferences --theme dark
  - %s users preferences --notifications=false`, constants.ProjectName, constants.ProjectName),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		req := api.UpdatePreferencesRequest{}
		if cmd.Flags().Changed("notifications") {
			req.Notifications = &prefNotifications
		}
		if cmd.Flags().Changed("theme") {
			req.Theme = &prefTheme
		}
		executeWithClient(cmd, func(ctx context.Context, c client.Interface) error {
			return NewUsersService(c, NewOutputWrapper(), outputFormat).UpdatePreferences(ctx, req)
		})
	},
}

var (
	profileEmail      string
	profilePhone      string
	prefNotifications bool
	prefTheme         string
)

func init() {
	createProfileCmd.Flags().StringVar(&profileEmail, "email", "", "Contact email (defaults to the signed-in email)")
	createProfileCmd.Flags().StringVar(&profilePhone, "phone", "", "Phone number in E.164 format")
	preferencesCmd.Flags().BoolVar(&prefNotifications, "notifications", true, "Receive email notifications")
	preferencesCmd.Flags().StringVar(&prefTheme, "theme", "", "UI theme (light or dark)")

	usersCmd.AddCommand(currentUserCmd, createProfileCmd, preferencesCmd)
	rootCmd.AddCommand(usersCmd)
}

// UsersService handles profile operations and their rendering
type UsersService struct {
	client client.Interface
	output OutputInterface
	format output.Format
}

// NewUsersService creates a new UsersService with the provided dependencies
func NewUsersService(c client.Interface, o OutputInterface, format output.Format) *UsersService {
	return &UsersService{client: c, output: o, format: format}
}

// ShowCurrentUser prints the caller's profile
func (s *UsersService) ShowCurrentUser(ctx context.Context) error {
	resp, err := s.client.GetCurrentUser(ctx)
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("no profile yet, run '%s users create'", constants.ProjectName)
		}
		return fmt.Errorf("failed to get profile: %w", err)
	}
	return s.printUser(resp.User)
}

// CreateProfile creates the caller's profile
func (s *UsersService) CreateProfile(ctx context.Context, req api.CreateUserProfileRequest) error {
	resp, err := s.client.CreateCurrentUser(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	if s.format == output.FormatTable {
		s.output.Successf("Profile created")
	}
	return s.printUser(resp.User)
}

// UpdatePreferences changes the caller's preferences
func (s *UsersService) UpdatePreferences(ctx context.Context, req api.UpdatePreferencesRequest) error {
	if req.Notifications == nil && req.Theme == nil {
		return errors.New("nothing to update, pass --notifications and/or --theme")
	}
	if req.Theme != nil {
		if _, err := domain.ParseTheme(*req.Theme); err != nil {
			return err
		}
	}

	resp, err := s.client.UpdatePreferences(ctx, req)
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("no profile yet, run '%s users create'", constants.ProjectName)
		}
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	if s.format == output.FormatTable {
		s.output.Successf("Preferences updated")
	}
	return s.printUser(resp.User)
}

func (s *UsersService) printUser(u domain.UserRecord) error {
	if s.format == output.FormatYAML {
		return s.output.YAML(u)
	}

	s.output.Blank()
	s.output.KeyValue("User ID", u.UserID)
	s.output.KeyValue("Email", u.Email)
	if u.PhoneNumber != "" {
		s.output.KeyValue("Phone", u.PhoneNumber)
	}
	s.output.KeyValue("Notifications", strconv.FormatBool(u.Preferences.Notifications))
	s.output.KeyValue("Theme", string(u.Preferences.Theme))
	s.output.KeyValue("Created", u.CreatedAt.Format(timeLayout))
	if u.UpdatedAt != nil {
		s.output.KeyValue("Updated", u.UpdatedAt.Format(timeLayout))
	}
	s.output.Blank()
	return nil
}
