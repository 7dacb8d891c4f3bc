package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Jinsoo1210/carrot/internal/api"
	"github.com/Jinsoo1210/carrot/internal/session"
	"github.com/Jinsoo1210/carrot/internal/ui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	authUsername string
	authPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the carrot backend",
	Long: `Logs in with email and password and stores the returned access token.
The password is read from the terminal without echo unless --password is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, pw, err := credentials(authUsername, authPassword)
		if err != nil {
			return err
		}
		s, err := newSession()
		if err != nil {
			return err
		}
		return loginRun(cmd.Context(), os.Stdout, os.Stderr, s, user, pw)
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a carrot account",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, pw, err := credentials(authUsername, authPassword)
		if err != nil {
			return err
		}
		s, err := newSession()
		if err != nil {
			return err
		}
		return signupRun(cmd.Context(), os.Stdout, s, user, pw)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return logoutRun(os.Stdout, s)
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show whether an access token is stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return whoamiRun(os.Stdout, s, jsonOutput)
	},
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, signupCmd} {
		c.Flags().StringVarP(&authUsername, "username", "u", "", "account email")
		c.Flags().StringVar(&authPassword, "password", "", "account password (prompted when empty)")
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

// credentials fills in whatever the flags left empty by prompting on stderr.
func credentials(user, pw string) (string, string, error) {
	if user == "" {
		fmt.Fprint(os.Stderr, "Email: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", "", fmt.Errorf("reading email: %w", err)
		}
		user = strings.TrimSpace(line)
	}
	if user == "" {
		return "", "", errors.New("email is required")
	}
	if pw == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return "", "", errors.New("password is required (use --password when stdin is not a terminal)")
		}
		fmt.Fprint(os.Stderr, "Password: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", "", fmt.Errorf("reading password: %w", err)
		}
		pw = string(b)
	}
	return user, pw, nil
}

func loginRun(ctx context.Context, w, errW io.Writer, s *session.Session, user, pw string) error {
	res, err := s.Login(ctx, user, pw)
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return errors.New("invalid email or password")
	case err != nil:
		return fmt.Errorf("login failed: %w", err)
	}
	if res.StoreErr != nil {
		fmt.Fprintln(errW, color.New(color.FgYellow).Sprintf("warning: token not saved: %v", res.StoreErr))
	}
	fmt.Fprintln(w, color.New(color.FgGreen).Sprintf("Logged in as %s.", user))
	return nil
}

func signupRun(ctx context.Context, w io.Writer, s *session.Session, user, pw string) error {
	err := s.Signup(ctx, user, pw)
	var se *api.StatusError
	switch {
	case errors.Is(err, api.ErrConflict):
		return errors.New("email already registered")
	case errors.Is(err, api.ErrValidation) && errors.As(err, &se) && se.Message != "":
		return errors.New(se.Message)
	case err != nil:
		return fmt.Errorf("signup failed: %w", err)
	}
	fmt.Fprintln(w, color.New(color.FgGreen).Sprintf("Account %s created. Run carrot login to sign in.", user))
	return nil
}

func logoutRun(w io.Writer, s *session.Session) error {
	if err := s.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	fmt.Fprintln(w, "Logged out.")
	return nil
}

type whoamiResult struct {
	LoggedIn bool   `json:"logged_in"`
	APIURL   string `json:"api_url"`
}

func whoamiRun(w io.Writer, s *session.Session, asJSON bool) error {
	in, err := s.LoggedIn()
	if err != nil {
		return err
	}
	if asJSON {
		return ui.FormatJSON(w, whoamiResult{LoggedIn: in, APIURL: appConfig.APIURL})
	}
	if in {
		fmt.Fprintf(w, "Logged in to %s.\n", appConfig.APIURL)
		return nil
	}
	fmt.Fprintln(w, "Not logged in.")
	return nil
}
