package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tinkerbox/cmd/tink/ui"
	"tinkerbox/internal/store"
)

var (
	blogUserBio      string
	blogCatDesc      string
	blogPostCategory int64
	blogPostPublish  bool
	blogListCategory string
	blogCommentEmail string
)

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Run a tiny blog: users, posts, comments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return blogPostListCmd.RunE(cmd, nil)
	},
}

var blogUserCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage blog users",
}

var blogUserAddCmd = &cobra.Command{
	Use:   "add [username] [email] [password]",
	Short: "Register a blog user",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.AddBlogUser(args[0], args[1], args[2], blogUserBio)
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Registered %s (user #%d)", args[0], id)))
		return nil
	},
}

var blogUserLoginCmd = &cobra.Command{
	Use:   "login [username] [password]",
	Short: "Check a user's credentials",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ok, err := st.CheckBlogPassword(args[0], args[1])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("invalid credentials for %s", args[0])
		}
		user, err := st.GetBlogUser(args[0])
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Welcome back, %s", user.Username)))
		if user.Bio != "" {
			fmt.Println(styles.Muted.Render(user.Bio))
		}
		return nil
	},
}

var blogCategoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage blog categories",
}

var blogCategoryAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.AddBlogCategory(args[0], blogCatDesc)
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Created category %s (#%d)", args[0], id)))
		return nil
	},
}

var blogPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Manage blog posts",
}

var blogPostAddCmd = &cobra.Command{
	Use:   "add [author-id] [title] [content...]",
	Short: "Write a post",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		authorID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("author id must be a number: %s", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.AddBlogPost(args[1], joinArgs(args[2:]), authorID, blogPostCategory, blogPostPublish)
		if err != nil {
			return err
		}
		state := "draft"
		if blogPostPublish {
			state = "published"
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Saved post #%d (%s)", id, state)))
		return nil
	},
}

var blogPostPublishCmd = &cobra.Command{
	Use:   "publish [id]",
	Short: "Publish a draft post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id: %s", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.PublishBlogPost(id); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Published post #%d", id)))
		return nil
	},
}

var blogPostViewCmd = &cobra.Command{
	Use:   "view [id]",
	Short: "Read a post (bumps the view counter)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id: %s", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		post, err := st.ViewBlogPost(id)
		if err != nil {
			return err
		}

		var md strings.Builder
		fmt.Fprintf(&md, "# %s\n\n", post.Title)
		fmt.Fprintf(&md, "*by %s in %s — %s, %d views*\n\n", post.Author, post.Category,
			post.CreatedAt.Format("2006-01-02"), post.ViewCount)
		md.WriteString(post.Content)
		md.WriteString("\n")

		comments, err := st.CommentsForPost(id)
		if err != nil {
			return err
		}
		if len(comments) > 0 {
			fmt.Fprintf(&md, "\n## Comments (%d)\n\n", len(comments))
			for _, c := range comments {
				fmt.Fprintf(&md, "**%s** · %s\n\n%s\n\n", c.AuthorName,
					c.CreatedAt.Format("2006-01-02 15:04"), c.Content)
			}
		}
		fmt.Print(ui.RenderMarkdown(md.String(), styles))
		return nil
	},
}

var blogPostListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		title := "Published posts"
		var posts []store.BlogPost
		if blogListCategory != "" {
			title = fmt.Sprintf("Posts in %s", blogListCategory)
			posts, err = st.PostsByCategory(blogListCategory)
		} else {
			posts, err = st.PublishedPosts()
		}
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			fmt.Println(styles.Muted.Render("No posts yet."))
			return nil
		}
		table := ui.NewSimpleTable(title, []string{"ID", "Title", "Author", "Category", "Views", "Date"})
		for _, p := range posts {
			table.AddRow(strconv.FormatInt(p.ID, 10), p.Title, p.Author, p.Category,
				strconv.FormatInt(p.ViewCount, 10), p.CreatedAt.Format("2006-01-02"))
		}
		fmt.Print(table.View(styles))
		return nil
	},
}

var blogCommentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage comments",
}

var blogCommentAddCmd = &cobra.Command{
	Use:   "add [post-id] [name] [comment...]",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id: %s", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.AddBlogComment(postID, args[1], blogCommentEmail, joinArgs(args[2:]))
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Added comment #%d", id)))
		return nil
	},
}

var blogCommentListCmd = &cobra.Command{
	Use:   "list [post-id]",
	Short: "List comments on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id: %s", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		comments, err := st.CommentsForPost(postID)
		if err != nil {
			return err
		}
		if len(comments) == 0 {
			fmt.Println(styles.Muted.Render("No comments yet."))
			return nil
		}
		table := ui.NewSimpleTable(fmt.Sprintf("Comments on post #%d", postID),
			[]string{"ID", "Author", "Comment", "Date"})
		for _, c := range comments {
			table.AddRow(strconv.FormatInt(c.ID, 10), c.AuthorName, c.Content,
				c.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Print(table.View(styles))
		return nil
	},
}

var blogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Blog statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.BlogStatistics()
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable("Blog statistics", []string{"Metric", "Value"})
		table.AddRow("Users", strconv.Itoa(stats.Users))
		table.AddRow("Posts", strconv.Itoa(stats.Posts))
		table.AddRow("Published", strconv.Itoa(stats.Published))
		table.AddRow("Comments", strconv.Itoa(stats.Comments))
		table.AddRow("Categories", strconv.Itoa(stats.Categories))
		table.AddRow("Most viewed", stats.MostViewed)
		table.AddRow("Most commented", stats.MostCommented)
		fmt.Print(table.View(styles))
		return nil
	},
}

func init() {
	blogUserAddCmd.Flags().StringVar(&blogUserBio, "bio", "", "Short author bio")
	blogCategoryAddCmd.Flags().StringVar(&blogCatDesc, "description", "", "Category description")
	blogPostAddCmd.Flags().Int64Var(&blogPostCategory, "category", 0, "Category id")
	blogPostAddCmd.Flags().BoolVar(&blogPostPublish, "publish", false, "Publish immediately instead of saving a draft")
	blogPostListCmd.Flags().StringVar(&blogListCategory, "category", "", "Only posts in this category")
	blogCommentAddCmd.Flags().StringVar(&blogCommentEmail, "email", "", "Commenter email")

	blogUserCmd.AddCommand(blogUserAddCmd, blogUserLoginCmd)
	blogCategoryCmd.AddCommand(blogCategoryAddCmd)
	blogPostCmd.AddCommand(blogPostAddCmd, blogPostPublishCmd, blogPostViewCmd, blogPostListCmd)
	blogCommentCmd.AddCommand(blogCommentAddCmd, blogCommentListCmd)
	blogCmd.AddCommand(blogUserCmd, blogCategoryCmd, blogPostCmd, blogCommentCmd, blogStatsCmd)
}
