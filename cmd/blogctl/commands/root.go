package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/UkralStul/blog-mvc/cmd/blogctl/output"
	"github.com/UkralStul/blog-mvc/internal/config"
)

var (
	// Global flags
	apiURL     string
	configPath string
	outPath    string
	jsonOutput bool
	verbose    bool

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "Command line client for the blog REST API",
	Long: `blogctl talks to the blog REST API the same way the web page does:
every command loads the posts, performs one action through the page model
and prints the resulting messages.

Use --out to save the rendered page as an HTML file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if apiURL != "" {
			loaded.APIURL = apiURL
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errReported) {
			output.Error("%v", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Posts endpoint URL (default from config: http://localhost:3001/api/posts)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&outPath, "out", "", "Write the rendered page to this HTML file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests and events to stderr")
}
