// Package cli implements the showcasectl command tree. Commands are the
// client's views: they gather form input, call one API facade and print
// the result; all session state lives in the session manager.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	showcase "github.com/vitshowcase/showcase-go"
	"github.com/vitshowcase/showcase-go/session"
)

var (
	cfgFile string
	apiURL  string
	apiEnv  string
	jsonOut bool
	verbose bool
)

// errReported marks command failures already explained on stderr.
var errReported = errors.New("already reported")

var rootCmd = &cobra.Command{
	Use:   "showcasectl",
	Short: "Client for the VIT student showcase platform",
	Long: `showcasectl browses and manages student projects on the VIT
showcase platform.

Log in once; the session token is stored locally and attached to every
call until it expires or you log out.

Examples:
  showcasectl login --email you@vit.edu
  showcasectl projects list
  showcasectl projects create --title "My App" --category "Web Development"
  showcasectl admin stats`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command under ctx so an interrupt cancels
// in-flight requests. Unauthorized failures have already been explained
// to the user; everything else is printed here.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "%s %v\n", colorRed("✗"), err)
		}
		return 1
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.showcasectl.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&apiEnv, "env", "development", "API environment (development, production)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each request")

	viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("env", rootCmd.PersistentFlags().Lookup("env"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".showcasectl")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("SHOWCASE")
	viper.AutomaticEnv()

	// Missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

// resolveBaseURL applies the precedence: explicit flag/config value,
// then the environment-selected default.
func resolveBaseURL() string {
	if url := viper.GetString("api_url"); url != "" {
		return url
	}
	return showcase.ResolveBaseURL(viper.GetString("env"))
}

// tokenPath is where the session token is persisted between runs.
func tokenPath() string {
	if p := viper.GetString("token_file"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".showcasectl-token"
	}
	return filepath.Join(home, ".config", "showcasectl", "token")
}

// getClient builds the API client from the resolved configuration.
func getClient() (*showcase.Client, error) {
	opts := []showcase.Option{
		showcase.WithBaseURL(resolveBaseURL()),
		showcase.WithTokenStore(showcase.NewFileTokenStore(tokenPath())),
	}
	return showcase.NewClient(opts...), nil
}

// newSessionManager wires a fresh session manager to client without
// restoring state; login-type commands establish it themselves.
func newSessionManager(client *showcase.Client) *session.Manager {
	return session.NewManager(client)
}

// getSession builds the client and restores the persisted session. Most
// commands want both; auth commands use getClient directly.
func getSession(cmd *cobra.Command) (*showcase.Client, *session.Manager, error) {
	client, err := getClient()
	if err != nil {
		return nil, nil, err
	}
	mgr := session.NewManager(client)
	if err := mgr.Restore(cmd.Context()); err != nil && verbose {
		fmt.Fprintf(os.Stderr, "session restore: %v\n", err)
	}
	return client, mgr, nil
}

// requireAuth is the CLI's route guard. It maps the guard decision onto
// command-line outcomes: an unauthenticated user is told to log in, a
// non-admin hitting an admin command sees the access-denied view.
func requireAuth(cmd *cobra.Command, requireAdmin bool) (*showcase.Client, *session.Manager, error) {
	client, mgr, err := getSession(cmd)
	if err != nil {
		return nil, nil, err
	}

	switch session.Decide(mgr.State(), requireAdmin) {
	case session.RedirectToLogin:
		fmt.Fprintf(os.Stderr, "%s Not logged in. Run: showcasectl login\n", colorYellow("⚠"))
		return nil, nil, errReported
	case session.DenyAccess:
		role := showcase.RoleUser
		if u := mgr.State().User; u != nil {
			role = u.Role
		}
		fmt.Fprintf(os.Stderr, "%s Access denied: admin privileges required (current role: %s)\n", colorRed("✗"), role)
		return nil, nil, errReported
	}
	return client, mgr, nil
}

// printError reports an API failure. It is the single place that
// decides what a typed unauthorized error means for the user.
func printError(err error) {
	if showcase.IsUnauthorized(err) {
		fmt.Fprintf(os.Stderr, "%s Session expired. Run: showcasectl login\n", colorYellow("⚠"))
		return
	}
	if apiErr, ok := showcase.AsError(err); ok {
		fmt.Fprintf(os.Stderr, "%s %s\n", colorRed("✗"), apiErr.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "%s Network error: %v\n", colorRed("✗"), err)
}

// wrapRunError marks a failure printError has already shown so Execute
// does not report it twice.
func wrapRunError(err error) error {
	if err == nil {
		return nil
	}
	return errReported
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printTableHeader(w *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func confirm(prompt string) bool {
	fmt.Printf("%s %s [y/N]: ", colorYellow("⚠"), prompt)
	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "Y"
}

// Color helpers

func colorGreen(s string) string  { return "\033[32m" + s + "\033[0m" }
func colorYellow(s string) string { return "\033[33m" + s + "\033[0m" }
func colorRed(s string) string    { return "\033[31m" + s + "\033[0m" }
