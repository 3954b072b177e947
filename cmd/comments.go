package cmd

import (
	"fmt"
	"os"

	"github.com/okarum/beatdeck/internal/api"
	"github.com/spf13/cobra"
)

var commentsCmd = &cobra.Command{
	Use:   "comments <commentable-id>",
	Short: "Print one page of a comment thread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int64
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid commentable id %q", args[0])
		}

		ctype, _ := cmd.Flags().GetString("type")
		sort, _ := cmd.Flags().GetString("sort")
		page, _ := cmd.Flags().GetInt("page")

		var opts []api.Option
		if base := os.Getenv("BEATDECK_API"); base != "" {
			opts = append(opts, api.WithBaseURL(base))
		}
		client := api.NewClient(opts...)

		bundle, err := client.ListComments(cmd.Context(), api.CommentsRequest{
			Type: api.CommentableType(ctype),
			ID:   id,
			Sort: api.CommentSort(sort),
			Page: page,
		})
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}

		fmt.Printf("%d comment(s), %d top-level, total %d\n\n",
			len(bundle.Comments), bundle.TopLevelCount, bundle.Total)

		for _, c := range bundle.Comments {
			if c.Deleted {
				fmt.Println("  [deleted]")
				continue
			}
			author := "unknown"
			if u := bundle.UserByID(c.UserID); u != nil {
				author = u.Username
			}
			indent := ""
			if c.ParentID != nil {
				indent = "    ↳ "
			}
			fmt.Printf("%s%s (%s, +%d)\n%s%s\n\n",
				indent, author, c.CreatedAt.Format("2006-01-02"), c.VotesUp,
				indent, c.Message)
		}

		if bundle.HasMore {
			fmt.Println("more pages available")
		}
		return nil
	},
}

func init() {
	commentsCmd.Flags().String("type", string(api.CommentableBeatmapSet), "Commentable type (build, beatmapset, news_post)")
	commentsCmd.Flags().String("sort", string(api.SortNew), "Sort order (new, old, top)")
	commentsCmd.Flags().Int("page", 1, "Page number (1-based)")
}
