package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/client"
	"github.com/taskapp/taskapp/internal/config"
	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/output"
)

var signUpCmd = &cobra.Command{
	Use:   "signup <email>",
	Short: "Create an account",
	Long: fmt.Sprintf(`Create an account. A confirmation code is emailed to you;
pass it to '%s confirm' to activate the account.`, constants.ProjectName),
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		executeWithClient(cmd, func(ctx context.Context, c client.Interface) error {
			svc := NewAuthService(c, NewOutputWrapper(), NewConfigSaver())
			return svc.SignUp(ctx, args[0], authPassword, signUpPhone)
		})
	},
}

var confirmCmd = &cobra.Command{
	Use:     "confirm <email> <code>",
	Short:   "Confirm an account with the emailed code",
	Example: fmt.Sprintf(`  - %s confirm alice@example.com 123456`, constants.ProjectName),
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		executeWithClient(cmd, func(ctx context.Context, c client.Interface) error {
			svc := NewAuthService(c, NewOutputWrapper(), NewConfigSaver())
			return svc.Confirm(ctx, args[0], args[1])
		})
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and store the ID token in the configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := getConfigFromContext(cmd)
		if err != nil {
			output.Errorf("failed to load configuration: %v", err)
			return
		}
		// Sign-in must not send a stale token.
		c := client.New(&config.Config{APIEndpoint: cfg.APIEndpoint}, slog.Default())
		svc := NewAuthService(c, NewOutputWrapper(), NewConfigSaver())
		if err = svc.Login(cmd.Context(), cfg, args[0], authPassword); err != nil {
			output.Errorf(err.Error())
		}
	},
}

var (
	authPassword string
	signUpPhone  string
)

func init() {
	signUpCmd.Flags().StringVar(&authPassword, "password", "", "Account password (prompted when omitted)")
	signUpCmd.Flags().StringVar(&signUpPhone, "phone", "", "Phone number in E.164 format")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "Account password (prompted when omitted)")

	rootCmd.AddCommand(signUpCmd, confirmCmd, loginCmd)
}

// AuthService handles account registration and sign-in
type AuthService struct {
	client      client.Interface
	output      OutputInterface
	configSaver ConfigSaver
}

// NewAuthService creates a new AuthService with the provided dependencies
func NewAuthService(c client.Interface, o OutputInterface, saver ConfigSaver) *AuthService {
	return &AuthService{client: c, output: o, configSaver: saver}
}

func (s *AuthService) password(given string) (string, error) {
	if given != "" {
		return given, nil
	}
	password := s.output.Prompt("Password")
	if password == "" {
		return "", errors.New("password is required")
	}
	return password, nil
}

// SignUp registers a new account
func (s *AuthService) SignUp(ctx context.Context, email, password, phone string) error {
	password, err := s.password(password)
	if err != nil {
		return err
	}

	resp, err := s.client.SignUp(ctx, api.SignUpRequest{Email: email, Password: password, PhoneNumber: phone})
	if err != nil {
		return fmt.Errorf("failed to sign up: %w", err)
	}

	s.output.Successf("Account created for %s", s.output.Bold(email))
	s.output.KeyValue("User ID", resp.UserID)
	if !resp.UserConfirmed {
		s.output.Infof("Check your inbox and run: %s", s.output.Cyan(constants.ProjectName+" confirm "+email+" <code>"))
	}
	return nil
}

// Confirm activates an account with the emailed code
func (s *AuthService) Confirm(ctx context.Context, email, code string) error {
	if _, err := s.client.ConfirmSignUp(ctx, api.ConfirmSignUpRequest{Email: email, Code: code}); err != nil {
		return fmt.Errorf("failed to confirm account: %w", err)
	}
	s.output.Successf("Account confirmed")
	s.output.Infof("Sign in with: %s", s.output.Cyan(constants.ProjectName+" login "+email))
	return nil
}

// Login signs in and saves the ID token next to the current endpoint
func (s *AuthService) Login(ctx context.Context, cfg *config.Config, email, password string) error {
	password, err := s.password(password)
	if err != nil {
		return err
	}

	resp, err := s.client.SignIn(ctx, api.SignInRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}

	if err = s.configSaver.Save(&config.Config{APIEndpoint: cfg.APIEndpoint, IDToken: resp.IDToken}); err != nil {
		return fmt.Errorf("failed to save ID token: %w", err)
	}

	s.output.Successf("Signed in as %s", s.output.Bold(email))
	if resp.ExpiresIn > 0 {
		s.output.KeyValue("Token expires in", fmt.Sprintf("%ds", resp.ExpiresIn))
	}
	return nil
}
