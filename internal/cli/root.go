// Package cli implements the reposcout command line interface
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	gh "reposcout/internal/adapters/github"
	"reposcout/internal/platform/config"
	"reposcout/internal/services/search/domain"
	ssvc "reposcout/internal/services/search/service"
)

var (
	flagLimit     int
	flagNoReadme  bool
	flagOutput    string
	flagFormat    string
	flagMaxReadme int
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "reposcout <domain>",
	Short: "Search GitHub repositories and retrieve README content",
	Long: `reposcout searches GitHub repositories for a free-text domain, ranks them
by stars descending, and optionally fetches and decodes each repository's README.`,
	Example: `  reposcout "machine learning" --limit 5
  reposcout react --limit 3 --no-readme
  reposcout python --limit 10 --output results.json
  reposcout blockchain --limit 3 --format txt --output results.txt`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command; any error exits with code 1
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&flagLimit, "limit", "n", 5, "Maximum number of repositories to return")
	rootCmd.Flags().BoolVar(&flagNoReadme, "no-readme", false, "Skip retrieving README content (faster)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Save results to file")
	rootCmd.Flags().StringVar(&flagFormat, "format", "json", "Output format for file (json or txt)")
	rootCmd.Flags().IntVar(&flagMaxReadme, "max-readme-length", 500, "Maximum README content length to display")
	rootCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Quiet mode - minimal output")
}

func run(cmd *cobra.Command, args []string) error {
	dom := args[0]

	if flagFormat != "json" && flagFormat != "txt" {
		return fmt.Errorf("invalid format %q (want json or txt)", flagFormat)
	}

	cfg := config.New()
	gc := cfg.Prefix("GITHUB_")

	token := gc.MayString("TOKEN", "")
	if token == "" {
		fmt.Fprintln(os.Stderr, "Error: GITHUB_TOKEN environment variable is not set")
		fmt.Fprintln(os.Stderr, "Please set it with: export GITHUB_TOKEN=your_github_token")
		os.Exit(1)
	}

	ghc := gh.NewClient(gh.Options{
		BaseURL:   gc.MayString("BASE_URL", ""),
		UserAgent: gc.MayString("UA", ""),
		Timeout:   gc.MayDuration("TIMEOUT", 10*time.Second),
		Token:     token,
		MaxPages:  gc.MayInt("MAX_PAGES", 3),
		Overscan:  gc.MayInt("OVERSCAN", 2),
	})
	svc := ssvc.New(ghc, nil, ssvc.Options{})

	if !flagQuiet {
		fmt.Printf("Searching for '%s' repositories...\n", dom)
		fmt.Printf("Sorting by stars (descending) and returning top %d repositories\n", flagLimit)
	}

	ctx := cmd.Context()
	var res domain.SearchResult
	var err error
	if flagNoReadme {
		res, err = svc.Search(ctx, dom, flagLimit)
	} else {
		res, err = svc.SearchWithReadmes(ctx, dom, flagLimit)
	}
	if err != nil {
		return err
	}

	displayResults(os.Stdout, res.Repositories, flagMaxReadme, flagQuiet)

	if flagOutput != "" {
		if err := saveResults(flagOutput, flagFormat, res.Repositories); err != nil {
			return err
		}
		fmt.Printf("Results saved to %s\n", flagOutput)
	}
	return nil
}
