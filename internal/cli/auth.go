package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	showcase "github.com/vitshowcase/showcase-go"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the showcase platform",
	Long: `Authenticate with your account and store the session token locally.

Examples:
  showcasectl login --email you@vit.edu --password secret1`,
	RunE: runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Register a new student account and log in.

Examples:
  showcasectl register --name "A. Student" --email you@vit.edu \
    --password secret1 --branch "Computer Science" --year 3`,
	RunE: runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the stored session token",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in user",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")

	registerCmd.Flags().String("name", "", "full name")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password (minimum 6 characters)")
	registerCmd.Flags().String("branch", "", "engineering branch")
	registerCmd.Flags().Int("year", 0, "year of study (1-4)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

// loginForm is the login view's local state.
type loginForm struct {
	Email    string
	Password string
}

// validate checks required fields before anything goes on the wire.
func (f *loginForm) validate() error {
	if f.Email == "" || f.Password == "" {
		return errors.New("please fill in all fields")
	}
	return nil
}

// registerForm is the registration view's local state.
type registerForm struct {
	Name     string
	Email    string
	Password string
	Branch   string
	Year     int
}

func (f *registerForm) validate() error {
	if f.Name == "" || f.Email == "" || f.Password == "" || f.Branch == "" || f.Year == 0 {
		return errors.New("please fill in all fields")
	}
	if len(f.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if !showcase.ValidBranch(f.Branch) {
		return fmt.Errorf("unknown branch %q", f.Branch)
	}
	if f.Year < 1 || f.Year > 4 {
		return errors.New("year must be between 1 and 4")
	}
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	form := loginForm{}
	form.Email, _ = cmd.Flags().GetString("email")
	form.Password, _ = cmd.Flags().GetString("password")

	if err := form.validate(); err != nil {
		return err
	}

	client, err := getClient()
	if err != nil {
		return err
	}
	mgr := newSessionManager(client)

	result := mgr.Login(cmd.Context(), showcase.Credentials{
		Email:    form.Email,
		Password: form.Password,
	})
	if !result.Success {
		return errors.New(result.Error)
	}

	user := mgr.State().User

	if jsonOut {
		return printJSON(user)
	}

	fmt.Printf("%s Logged in as %s (%s)\n", colorGreen("✓"), user.Name, user.Email)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	form := registerForm{}
	form.Name, _ = cmd.Flags().GetString("name")
	form.Email, _ = cmd.Flags().GetString("email")
	form.Password, _ = cmd.Flags().GetString("password")
	form.Branch, _ = cmd.Flags().GetString("branch")
	form.Year, _ = cmd.Flags().GetInt("year")

	if err := form.validate(); err != nil {
		return err
	}

	client, err := getClient()
	if err != nil {
		return err
	}
	mgr := newSessionManager(client)

	result := mgr.Register(cmd.Context(), showcase.Registration{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Branch:   form.Branch,
		Year:     form.Year,
	})
	if !result.Success {
		return errors.New(result.Error)
	}

	user := mgr.State().User

	if jsonOut {
		return printJSON(user)
	}

	fmt.Printf("%s Welcome to the showcase, %s!\n", colorGreen("✓"), user.Name)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}
	mgr := newSessionManager(client)
	mgr.Logout()

	if jsonOut {
		return printJSON(map[string]string{"status": "logged_out"})
	}

	fmt.Printf("%s Logged out\n", colorGreen("✓"))
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	_, mgr, err := requireAuth(cmd, false)
	if err != nil {
		return err
	}

	user := mgr.State().User

	if jsonOut {
		return printJSON(user)
	}

	fmt.Printf("Name:    %s\n", user.Name)
	fmt.Printf("Email:   %s\n", user.Email)
	fmt.Printf("Branch:  %s\n", user.Branch)
	fmt.Printf("Year:    %d\n", user.Year)
	fmt.Printf("Role:    %s\n", user.Role)
	return nil
}
