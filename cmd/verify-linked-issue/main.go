package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/holon-run/verify-linked-issue/pkg/actions"
	"github.com/holon-run/verify-linked-issue/pkg/config"
	hghelper "github.com/holon-run/verify-linked-issue/pkg/github"
	"github.com/holon-run/verify-linked-issue/pkg/logging"
	"github.com/holon-run/verify-linked-issue/pkg/verify"
	"github.com/spf13/cobra"
)

// errRunFailed signals that the verdict was already reported; main only sets the exit code
var errRunFailed = errors.New("linked issue verification failed")

var (
	commentFlag  string
	filenameFlag string
	envFile      string
	logLevel     string
	apiURL       string
)

var rootCmd = &cobra.Command{
	Use:   "verify-linked-issue",
	Short: "Verify that a pull request references a tracked issue",
	Long: `Verify that the triggering pull request references a tracked issue.

The pull request body is searched for "<owner>/<repo>/issues/<n>" references,
each validated against the issue tracker. When none is found, the pull
request's events are checked for a "connected" event. If neither links an
issue, the step fails and optionally comments on the pull request.

Intended to run as a GitHub Actions step; inputs are read from INPUT_COMMENT
and INPUT_FILENAME, and may be overridden with flags.

Examples:
  verify-linked-issue
  verify-linked-issue --comment 'enabled: true' --filename .github/LINK_ISSUE.md
  verify-linked-issue --env-file .env --log-level debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnvFile(envFile); err != nil {
			return err
		}

		env, err := actions.LoadEnv()
		if err != nil {
			return err
		}

		level := logging.ParseLevel(logLevel)
		if env.Debug {
			level = slog.LevelDebug
		}
		logger := logging.NewLogger(cmd.ErrOrStderr(), level, os.Getenv("NO_COLOR") != "")
		commands := actions.NewCommands(cmd.OutOrStdout())

		ac, err := actions.LoadContext(env)
		if err != nil {
			verify.ReportError(commands, logger, err)
			return errRunFailed
		}

		if ac.IsPullRequest() && env.Token == "" {
			verify.ReportError(commands, logger, fmt.Errorf("%s environment variable is required", hghelper.TokenEnv))
			return errRunFailed
		}

		baseURL, _ := config.ResolveString(apiURL, env.APIURL, hghelper.DefaultBaseURL)
		client := hghelper.NewClient(env.Token, hghelper.WithBaseURL(baseURL))

		commentInput, _ := config.ResolveString(commentFlag, env.CommentInput, "")
		templatePath, templateSource := config.ResolveString(filenameFlag, env.FilenameInput, config.DefaultTemplatePath)
		logger.Debug("resolved configuration", "api_url", baseURL, "template", templatePath, "template_source", templateSource)

		v := verify.New(client, commands, verify.Options{
			CommentInput: commentInput,
			TemplatePath: templatePath,
			Logger:       logger,
		})
		result := v.Run(cmd.Context(), ac)

		actions.WriteOutputs(env.OutputPath, result.Outputs())

		if result.Failed() {
			return errRunFailed
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&commentFlag, "comment", "", "Comment configuration (overrides INPUT_COMMENT), e.g. 'enabled: true'")
	rootCmd.Flags().StringVar(&filenameFlag, "filename", "", "Comment template path (overrides INPUT_FILENAME)")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "Load environment variables from a .env file before running")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "GitHub API base URL (overrides GITHUB_API_URL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRunFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
