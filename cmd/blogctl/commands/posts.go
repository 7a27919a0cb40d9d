package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/UkralStul/blog-mvc/cmd/blogctl/output"
	"github.com/UkralStul/blog-mvc/internal/domain"
	"github.com/UkralStul/blog-mvc/internal/view"
)

var (
	// create/edit flags
	postTitle   string
	postContent string
	postAuthor  string

	// delete flags
	assumeYes bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all posts, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.Context())
	},
}

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Fetch one post from the server and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return runShow(cmd.Context(), id)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post",
	Long: `Create a post through the create form.

Title must be at least 3 characters and content at least 10 characters
(after trimming whitespace). Invalid input is rejected without contacting the server.

Examples:
  blogctl create --title "Hello" --content "My first blog post"
  blogctl create --title "Hello" --content "My first blog post" --author Alice`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd.Context())
	},
}

var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit the title and/or content of a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return runEdit(cmd, id)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a post after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return runDelete(cmd, id)
	},
}

func init() {
	rootCmd.AddCommand(listCmd, showCmd, createCmd, editCmd, deleteCmd)

	createCmd.Flags().StringVarP(&postTitle, "title", "t", "", "Post title")
	createCmd.Flags().StringVarP(&postContent, "content", "c", "", "Post content")
	createCmd.Flags().StringVarP(&postAuthor, "author", "a", "", "Author name (default Anonymous)")

	editCmd.Flags().StringVarP(&postTitle, "title", "t", "", "New title (keeps the current one if omitted)")
	editCmd.Flags().StringVarP(&postContent, "content", "c", "", "New content (keeps the current one if omitted)")
	editCmd.MarkFlagsOneRequired("title", "content")

	deleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}

func runList(ctx context.Context) error {
	s, err := newSession(ctx, nil)
	if err != nil {
		return err
	}
	if s.page.failed() {
		return s.finish()
	}

	posts := s.manager.Posts()
	if jsonOutput {
		if err := printJSON(posts); err != nil {
			return err
		}
		return s.finish()
	}

	if len(posts) == 0 {
		output.Muted("No blog posts yet. Be the first to create a blog post!")
	}
	for _, p := range posts {
		printPost(p, false)
	}
	return s.finish()
}

func runShow(ctx context.Context, id int64) error {
	s, err := newSession(ctx, nil)
	if err != nil {
		return err
	}
	if s.page.failed() {
		return s.finish()
	}

	post, err := s.manager.FetchPost(ctx, id)
	if err != nil {
		output.Error("Post %d: %v", id, err)
		return errReported
	}
	if jsonOutput {
		if err := printJSON(post); err != nil {
			return err
		}
		return s.finish()
	}
	printPost(post, true)
	return s.finish()
}

func runCreate(ctx context.Context) error {
	s, err := newSession(ctx, nil)
	if err != nil {
		return err
	}
	if s.page.failed() {
		return s.finish()
	}

	data := view.FormData{Title: postTitle, Content: postContent, Author: postAuthor}
	if !s.view.SubmitCreateForm(data) {
		return reportInvalid(domain.PostInput{Title: postTitle, Content: postContent})
	}
	return s.finish()
}

func runEdit(cmd *cobra.Command, id int64) error {
	s, err := newSession(cmd.Context(), nil)
	if err != nil {
		return err
	}
	if s.page.failed() {
		return s.finish()
	}

	// контроллер откроет окно редактирования или покажет "Post not found."
	s.view.RequestEdit(id)
	if _, ok := s.view.CurrentEditID(); !ok {
		return s.finish()
	}

	current, _ := s.manager.PostByID(id)
	data := view.FormData{Title: current.Title, Content: current.Content}
	if cmd.Flags().Changed("title") {
		data.Title = postTitle
	}
	if cmd.Flags().Changed("content") {
		data.Content = postContent
	}
	if !s.view.SubmitEditForm(data) {
		s.view.CancelEdit()
		return reportInvalid(domain.PostInput{Title: data.Title, Content: data.Content})
	}
	return s.finish()
}

func runDelete(cmd *cobra.Command, id int64) error {
	confirm := promptConfirm(cmd.InOrStdin())
	if assumeYes {
		confirm = func(string) bool { return true }
	}

	s, err := newSession(cmd.Context(), confirm)
	if err != nil {
		return err
	}
	if s.page.failed() {
		return s.finish()
	}

	if !s.view.RequestDelete(id) {
		output.Warning("Deletion cancelled")
	}
	return s.finish()
}

