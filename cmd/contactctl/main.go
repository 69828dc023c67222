package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/Azz3m90/LandPage/internal/client"
	"github.com/Azz3m90/LandPage/internal/contact"
	"github.com/Azz3m90/LandPage/internal/i18n"
	"github.com/Azz3m90/LandPage/internal/logging"
	"github.com/Azz3m90/LandPage/internal/version"
)

var logger *logging.Logger

func initLogger() {
	// Initialize logger configuration
	logConfig := &logging.LogConfig{
		File:       "~/.contactctl/cli.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	// Initialize the global logger
	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Get the logger instance
	logger = logging.GetGlobalLogger()
}

var rootCmd = &cobra.Command{
	Use:   "contactctl",
	Short: "contactctl - contact form submission client",
	Long: `contactctl submits contact requests to the contact API with the same
guarding the website form applies: field validation, a CAPTCHA token gate
and a local resubmit cooldown.`,
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Validate and submit a contact request",
	Long: `Validate a contact request locally and submit it to the API.

The submit is blocked without any network call when a required field is
missing, the message is out of bounds, no CAPTCHA token is provided, or a
previous submit happened less than 60 seconds ago.

Example:
  contactctl submit --first-name John --last-name Doe \
    --email john@example.com --subject "Demo request" \
    --message "We would like a demo of the POS system." \
    --consent --token "$TURNSTILE_TOKEN"`,
	Run: func(cmd *cobra.Command, args []string) {
		apiURL, _ := cmd.Flags().GetString("api-url")
		language, _ := cmd.Flags().GetString("language")
		consent, _ := cmd.Flags().GetBool("consent")
		token, _ := cmd.Flags().GetString("token")
		tokenFile, _ := cmd.Flags().GetString("token-file")

		if token == "" && tokenFile != "" {
			data, err := os.ReadFile(tokenFile)
			if err != nil {
				logger.Error("Failed to read token file: %v", err)
				os.Exit(1)
			}
			token = strings.TrimSpace(string(data))
		}

		lang := i18n.DefaultLanguage
		if i18n.Supported(language) {
			lang = i18n.Language(language)
		}

		c, err := client.NewClient(apiURL, lang)
		if err != nil {
			logger.Error("Failed to create client: %v", err)
			os.Exit(1)
		}

		req := &contact.SubmissionRequest{
			TurnstileToken: token,
		}
		req.FirstName, _ = cmd.Flags().GetString("first-name")
		req.LastName, _ = cmd.Flags().GetString("last-name")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Phone, _ = cmd.Flags().GetString("phone")
		req.Subject, _ = cmd.Flags().GetString("subject")
		req.Message, _ = cmd.Flags().GetString("message")
		if consent {
			req.GDPRConsent = "on"
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		// Spinner while sending
		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " " + i18n.Catalog(lang).Sending
		s.Start()
		resp, err := c.Submit(ctx, req)
		s.Stop()

		if err != nil {
			var guardErr *client.GuardError
			if errors.As(err, &guardErr) {
				logger.Error("%s", guardErr.Message)
				for field, msg := range guardErr.Fields {
					logger.Error("  %s: %s", field, msg)
				}
				os.Exit(1)
			}
			logger.Error("Submit failed: %v", err)
			os.Exit(1)
		}

		if !resp.Success {
			logger.Error("%s", resp.Message)
			for field, msg := range resp.Fields {
				logger.Error("  %s: %s", field, msg)
			}
			os.Exit(1)
		}

		logger.Info("%s", resp.Message)
		if resp.Details != nil && !resp.Details.ConfirmationSent {
			logger.Warn("Confirmation email could not be sent to %s", req.Email)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Info("%s", version.Info())
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset-rate-limit",
	Short: "Clear all server-side rate limit records",
	Long: `Clear all per-sender rate limit records on the server.
Requires the operator admin token.

Example:
  contactctl reset-rate-limit --admin-token "$ADMIN_RESET_TOKEN"`,
	Run: func(cmd *cobra.Command, args []string) {
		apiURL, _ := cmd.Flags().GetString("api-url")
		adminToken, _ := cmd.Flags().GetString("admin-token")

		if adminToken == "" {
			logger.Error("An admin token is required (--admin-token)")
			os.Exit(1)
		}

		c, err := client.NewClient(apiURL, i18n.DefaultLanguage)
		if err != nil {
			logger.Error("Failed to create client: %v", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := c.ResetRateLimit(ctx, adminToken)
		if err != nil {
			logger.Error("Reset failed: %v", err)
			os.Exit(1)
		}

		logger.Info("%s", resp.Message)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{submitCmd, resetCmd} {
		cmd.Flags().String("api-url", "http://localhost:8080", "Base URL of the contact API")
	}

	submitCmd.Flags().String("first-name", "", "Sender first name")
	submitCmd.Flags().String("last-name", "", "Sender last name")
	submitCmd.Flags().String("email", "", "Sender email address")
	submitCmd.Flags().String("phone", "", "Sender phone number (optional)")
	submitCmd.Flags().String("subject", "", "Message subject")
	submitCmd.Flags().String("message", "", "Message body")
	submitCmd.Flags().Bool("consent", false, "Confirm GDPR consent")
	submitCmd.Flags().String("token", "", "Turnstile CAPTCHA token")
	submitCmd.Flags().String("token-file", "", "File containing the Turnstile CAPTCHA token")
	submitCmd.Flags().String("language", "", "Response language (en, fr, nl; default fr)")

	resetCmd.Flags().String("admin-token", "", "Operator admin token")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	initLogger()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
