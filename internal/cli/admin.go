package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	showcase "github.com/vitshowcase/showcase-go"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer users and projects",
	Long: `Admin dashboard commands. All of them require the admin role.

Examples:
  showcasectl admin stats
  showcasectl admin set-role 66b2f0c4e1 moderator
  showcasectl admin feature 66b2f0c4e1
  showcasectl admin delete-user 66b2f0c4e1`,
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show platform statistics, users and projects",
	RunE:  runAdminStats,
}

var adminDeleteProjectCmd = &cobra.Command{
	Use:   "delete-project <id>",
	Short: "Delete any project",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminDeleteProject,
}

var adminDeleteUserCmd = &cobra.Command{
	Use:   "delete-user <id>",
	Short: "Delete a user and all of their projects",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminDeleteUser,
}

var adminSetRoleCmd = &cobra.Command{
	Use:   "set-role <id> <role>",
	Short: "Change a user's role (user, moderator, admin)",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdminSetRole,
}

var adminFeatureCmd = &cobra.Command{
	Use:   "feature <id>",
	Short: "Toggle a project's featured flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminFeature,
}

func init() {
	adminDeleteProjectCmd.Flags().BoolP("force", "f", false, "skip confirmation prompt")
	adminDeleteUserCmd.Flags().BoolP("force", "f", false, "skip confirmation prompt")

	adminCmd.AddCommand(adminStatsCmd)
	adminCmd.AddCommand(adminDeleteProjectCmd)
	adminCmd.AddCommand(adminDeleteUserCmd)
	adminCmd.AddCommand(adminSetRoleCmd)
	adminCmd.AddCommand(adminFeatureCmd)

	rootCmd.AddCommand(adminCmd)
}

func runAdminStats(cmd *cobra.Command, args []string) error {
	client, _, err := requireAuth(cmd, true)
	if err != nil {
		return err
	}

	data, err := client.Admin.Stats(cmd.Context())
	if err != nil {
		printError(err)
		return wrapRunError(err)
	}

	if jsonOut {
		return printJSON(data)
	}

	fmt.Printf("Users: %d   Projects: %d   Admins: %d   Likes: %d   Comments: %d\n\n",
		data.Stats.TotalUsers,
		data.Stats.TotalProjects,
		data.Stats.TotalAdmins,
		data.Stats.TotalLikes,
		data.Stats.TotalComments,
	)

	fmt.Println("Users")
	w := newTable()
	printTableHeader(w, "ID", "NAME", "EMAIL", "ROLE", "BRANCH", "JOINED")
	for _, u := range data.Users {
		joined := ""
		if !u.CreatedAt.IsZero() {
			joined = u.CreatedAt.Format("Jan 2, 2006")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(u.ID, 12), u.Name, u.Email, u.Role, u.Branch, joined)
	}
	w.Flush()

	fmt.Println("\nProjects")
	printProjectTable(data.Projects)
	return nil
}

func runAdminDeleteProject(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if !force && !confirm(fmt.Sprintf("Delete project %s?", args[0])) {
		fmt.Println("Aborted")
		return nil
	}

	client, _, err := requireAuth(cmd, true)
	if err != nil {
		return err
	}

	if err := client.Admin.DeleteProject(cmd.Context(), args[0]); err != nil {
		printError(err)
		return wrapRunError(err)
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "deleted", "id": args[0]})
	}

	fmt.Printf("%s Project deleted: %s\n", colorGreen("✓"), args[0])
	return nil
}

func runAdminDeleteUser(cmd *cobra.Command, args []string) error {
	client, mgr, err := requireAuth(cmd, true)
	if err != nil {
		return err
	}

	// Admins cannot delete their own account from the dashboard.
	if current := mgr.State().User; current != nil && current.ID == args[0] {
		return fmt.Errorf("refusing to delete the currently logged-in admin")
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force && !confirm(fmt.Sprintf("Delete user %s? This will also delete all their projects.", args[0])) {
		fmt.Println("Aborted")
		return nil
	}

	if err := client.Admin.DeleteUser(cmd.Context(), args[0]); err != nil {
		printError(err)
		return wrapRunError(err)
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "deleted", "id": args[0]})
	}

	fmt.Printf("%s User deleted: %s\n", colorGreen("✓"), args[0])
	return nil
}

func runAdminSetRole(cmd *cobra.Command, args []string) error {
	role := showcase.Role(args[1])
	if !role.Valid() {
		return fmt.Errorf("invalid role %q (expected user, moderator or admin)", args[1])
	}

	client, _, err := requireAuth(cmd, true)
	if err != nil {
		return err
	}

	user, err := client.Admin.UpdateUserRole(cmd.Context(), args[0], role)
	if err != nil {
		printError(err)
		return wrapRunError(err)
	}

	if jsonOut {
		return printJSON(user)
	}

	fmt.Printf("%s %s is now %s\n", colorGreen("✓"), user.Name, user.Role)
	return nil
}

func runAdminFeature(cmd *cobra.Command, args []string) error {
	client, _, err := requireAuth(cmd, true)
	if err != nil {
		return err
	}

	project, err := client.Admin.FeatureProject(cmd.Context(), args[0])
	if err != nil {
		printError(err)
		return wrapRunError(err)
	}

	if jsonOut {
		return printJSON(project)
	}

	if project.Featured {
		fmt.Printf("%s Featured: %s\n", colorGreen("★"), project.Title)
	} else {
		fmt.Printf("%s No longer featured: %s\n", colorGreen("✓"), project.Title)
	}
	return nil
}
