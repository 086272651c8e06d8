package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	showcase "github.com/vitshowcase/showcase-go"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Browse and manage student projects",
	Long: `Project commands.

Examples:
  showcasectl projects list
  showcasectl projects list --category "Web Development"
  showcasectl projects create --title "My App" --description "..." \
    --category "Web Development" --tech React --tech Go
  showcasectl projects like 66b2f0c4e1
  showcasectl projects comment 66b2f0c4e1 --text "Nice work!"`,
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE:  runProjectsList,
}

var projectsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsGet,
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	RunE:  runProjectsCreate,
}

var projectsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project you own",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsUpdate,
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project you own",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsDelete,
}

var projectsLikeCmd = &cobra.Command{
	Use:   "like <id>",
	Short: "Toggle your like on a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsLike,
}

var projectsCommentCmd = &cobra.Command{
	Use:   "comment <id>",
	Short: "Comment on a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsComment,
}

func init() {
	projectsListCmd.Flags().String("category", "", "filter by category")
	projectsListCmd.Flags().Bool("featured", false, "only featured projects")

	addProjectFormFlags(projectsCreateCmd)
	addProjectFormFlags(projectsUpdateCmd)

	projectsDeleteCmd.Flags().BoolP("force", "f", false, "skip confirmation prompt")

	projectsCommentCmd.Flags().String("text", "", "comment text")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsGetCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsUpdateCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
	projectsCmd.AddCommand(projectsLikeCmd)
	projectsCmd.AddCommand(projectsCommentCmd)

	rootCmd.AddCommand(projectsCmd)
}

func addProjectFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "project title")
	cmd.Flags().String("description", "", "project description")
	cmd.Flags().String("category", "", "project category")
	cmd.Flags().StringArray("tech", nil, "technology tag (repeatable)")
	cmd.Flags().StringArray("remove-tech", nil, "drop a previously added tag before submit")
	cmd.Flags().String("github-url", "", "GitHub repository URL (optional)")
	cmd.Flags().String("live-url", "", "live demo URL (optional)")
}

// projectForm mirrors the create-project dialog: technologies are
// accumulated as tags (duplicates ignored) and can be removed again
// before submit.
type projectForm struct {
	Title        string
	Description  string
	Category     string
	Technologies []string
	GithubURL    string
	LiveURL      string
}

// AddTechnology appends a tag unless it is blank or already present.
func (f *projectForm) AddTechnology(tech string) {
	if tech == "" {
		return
	}
	for _, t := range f.Technologies {
		if t == tech {
			return
		}
	}
	f.Technologies = append(f.Technologies, tech)
}

// RemoveTechnology drops a tag.
func (f *projectForm) RemoveTechnology(tech string) {
	kept := f.Technologies[:0]
	for _, t := range f.Technologies {
		if t != tech {
			kept = append(kept, t)
		}
	}
	f.Technologies = kept
}

func (f *projectForm) validate() error {
	if f.Title == "" || f.Description == "" || f.Category == "" {
		return errors.New("title, description and category are required")
	}
	if !showcase.ValidCategory(f.Category) {
		return fmt.Errorf("unknown category %q (see: showcasectl projects categories)", f.Category)
	}
	return nil
}

func (f *projectForm) request() showcase.CreateProjectRequest {
	return showcase.CreateProjectRequest{
		Title:        f.Title,
		Description:  f.Description,
		Category:     f.Category,
		Technologies: f.Technologies,
		GithubURL:    f.GithubURL,
		LiveURL:      f.LiveURL,
	}
}

func projectFormFromFlags(cmd *cobra.Command) projectForm {
	form := projectForm{}
	form.Title, _ = cmd.Flags().GetString("title")
	form.Description, _ = cmd.Flags().GetString("description")
	form.Category, _ = cmd.Flags().GetString("category")
	form.GithubURL, _ = cmd.Flags().GetString("github-url")
	form.LiveURL, _ = cmd.Flags().GetString("live-url")

	added, _ := cmd.Flags().GetStringArray("tech")
	for _, t := range added {
		form.AddTechnology(t)
	}
	removed, _ := cmd.Flags().GetStringArray("remove-tech")
	for _, t := range removed {
		form.RemoveTechnology(t)
	}
	return form
}

func runProjectsList(cmd *cobra.Command, args []string) error {
	client, _, err := requireAuth(cmd, false)
	if err != nil {
		return err
	}

	category, _ := cmd.Flags().GetString("category")
	featured, _ := cmd.Flags().GetBool("featured")

	projects, err := client.Projects.List(cmd.Context(), &showcase.ListOptions{
		Category: category,
		Featured: featured,
	})
	if err != nil {
		printError(err)
		return wrapRunError(err)
	}

	list := projectList{}
	list.Replace(projects)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"projects": list.Items(),
			"count":    list.Len(),
		})
	}

	if list.Len() == 0 {
		fmt.Println("No projects yet. Be the first to showcase your work!")
		return nil
	}

	printProjectTable(list.Items())
	return nil
}

func printProjectTable(projects []showcase.Project) {
	w := newTable()
	printTableHeader(w, "ID", "TITLE", "CATEGORY", "AUTHOR", "LIKES", "COMMENTS", "FEATURED")
	for _, p := range projects {
		author := ""
		if p.Author != nil {
			author = p.Author.Name
		}
		featured := ""
		if p.Featured {
			featured = colorYellow("★")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			truncate(p.ID, 12),
			truncate(p.Title, 32),
			p.Category,
			author,
			len(p.Likes),
			len(p.Comments),
			featured,
		)
	}
	w.Flush()
}

func runProjectsGet(cmd *cobra.Command, args []string) error {
	client, _, err := requireAuth(cmd, false)
	if err != nil {
		return err
	}

	project, err := client.Projects.Get(cmd.Context(), args[0])
	if err != nil {
		printError(err)
		return wrapRunError(err)
	}

	if jsonOut {
		return printJSON(project)
	}

	printProjectDetail(project)
	return nil
}

func printProjectDetail(p *showcase.Project) {
	fmt.Printf("Title:        %s\n", p.Title)
	fmt.Printf("Category:     %s\n", p.Category)
	if p.Author != nil {
		fmt.Printf("Author:       %s (%s)\n", p.Author.Name, p.Author.Branch)
	}
	fmt.Printf("Description:  %s\n", p.Description)
	if len(p.Technologies) > 0 {
		fmt.Printf("Technologies: %s\n", joinTags(p.Technologies))
	}
	if p.GithubURL != "" {
		fmt.Printf("GitHub:       %s\n", p.GithubURL)
	}
	if p.LiveURL != "" {
		fmt.Printf("Live demo:    %s\n", p.LiveURL)
	}
	fmt.Printf("Likes:        %d\n", len(p.Likes))
	fmt.Printf("Comments:     %d\n", len(p.Comments))
	if p.Featured {
		fmt.Printf("Featured:     %s\n", colorYellow("★"))
	}
	if !p.CreatedAt.IsZero() {
		fmt.Printf("Created:      %s\n", p.CreatedAt.Format("Jan 2, 2006"))
	}
	for _, c := range p.Comments {
		fmt.Printf("  > %s\n", c.Text)
	}
}

func joinTags(tags []string) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}

func runProjectsCreate(cmd *cobra.Command, args []string) error {
	client, _, err := requireAuth(cmd, false)
	if err != nil {
		return err
	}

	form := projectFormFromFlags(cmd)
	if err := form.validate(); err != nil {
		return err
	}

	project, err := client.Projects.Create(cmd.Context(), form.request())
	if err != nil {
		printError(err)
		return wrapRunError(err)
	}

	if jsonOut {
		return printJSON(project)
	}

	fmt.Printf("%s Project created: %s (%s)\n", colorGreen("✓"), project.Title, project.ID)
	return nil
}

func runProjectsUpdate(cmd *cobra.Command, args []string) error {
	client, _, err := requireAuth(cmd, false)
	if err != nil {
		return err
	}

	form := projectFormFromFlags(cmd)
	if err := form.validate(); err != nil {
		return err
	}

	project, err := client.Projects.Update(cmd.Context(), args[0], form.request())
	if err != nil {
		printError(err)
		return wrapRunError(err)
	}

	if jsonOut {
		return printJSON(project)
	}

	fmt.Printf("%s Project updated: %s\n", colorGreen("✓"), project.Title)
	return nil
}

func runProjectsDelete(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if !force && !confirm(fmt.Sprintf("Delete project %s? This cannot be undone.", args[0])) {
		fmt.Println("Aborted")
		return nil
	}

	client, _, err := requireAuth(cmd, false)
	if err != nil {
		return err
	}

	if err := client.Projects.Delete(cmd.Context(), args[0]); err != nil {
		printError(err)
		return wrapRunError(err)
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "deleted", "id": args[0]})
	}

	fmt.Printf("%s Project deleted: %s\n", colorGreen("✓"), args[0])
	return nil
}

func runProjectsLike(cmd *cobra.Command, args []string) error {
	client, _, err := requireAuth(cmd, false)
	if err != nil {
		return err
	}

	likes, err := client.Projects.Like(cmd.Context(), args[0])
	if err != nil {
		printError(err)
		return wrapRunError(err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"likes": likes, "count": len(likes)})
	}

	fmt.Printf("%s Project now has %d like(s)\n", colorGreen("✓"), len(likes))
	return nil
}

func runProjectsComment(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	if text == "" {
		return errors.New("comment text is required")
	}

	client, _, err := requireAuth(cmd, false)
	if err != nil {
		return err
	}

	comments, err := client.Projects.Comment(cmd.Context(), args[0], text)
	if err != nil {
		printError(err)
		return wrapRunError(err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"comments": comments, "count": len(comments)})
	}

	fmt.Printf("%s Comment added (%d total)\n", colorGreen("✓"), len(comments))
	return nil
}
