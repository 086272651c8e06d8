package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	showcase "github.com/vitshowcase/showcase-go"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your profile and platform activity",
	RunE:  runDashboard,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the accepted project categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOut {
			return printJSON(showcase.Categories)
		}
		for _, c := range showcase.Categories {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	projectsCmd.AddCommand(categoriesCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	client, mgr, err := requireAuth(cmd, false)
	if err != nil {
		return err
	}

	user := mgr.State().User

	projects, err := client.Projects.List(cmd.Context(), nil)
	if err != nil {
		printError(err)
		return wrapRunError(err)
	}

	list := projectList{}
	list.Replace(projects)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"user": user,
			"stats": map[string]int{
				"totalProjects": list.Len(),
				"totalLikes":    list.TotalLikes(),
				"totalComments": list.TotalComments(),
			},
		})
	}

	fmt.Printf("Welcome back, %s!\n\n", user.Name)
	fmt.Printf("Profile\n")
	fmt.Printf("  Name:    %s\n", user.Name)
	fmt.Printf("  Email:   %s\n", user.Email)
	fmt.Printf("  Branch:  %s\n", user.Branch)
	fmt.Printf("  Year:    %d\n", user.Year)
	fmt.Printf("  Role:    %s\n\n", user.Role)
	fmt.Printf("Platform\n")
	fmt.Printf("  Projects:  %d\n", list.Len())
	fmt.Printf("  Likes:     %d\n", list.TotalLikes())
	fmt.Printf("  Comments:  %d\n", list.TotalComments())
	return nil
}
