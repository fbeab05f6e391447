package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"sdamgia-go/lib/configutil"
	"sdamgia-go/lib/latexocr"
	"sdamgia-go/lib/sdamgia"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sdamgia-cli",
	Short: "sdamgia-cli fetches problems, tests and catalogs from sdamgia.ru.",
}

// Config holds the optional credentials the cli reads from
// config.json5 next to the working directory.
type Config struct {
	GeminiApiKey string `json:"gemini_api_key"`
}

var (
	giaType string
	subject string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&giaType, "gia", "ege", "The exam track (ege or oge).")
	rootCmd.PersistentFlags().StringVar(&subject, "subject", "math", "The subject subdomain (math, phys, inf, ...).")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

func scope() sdamgia.Scope {
	s := sdamgia.Scope{
		GiaType: sdamgia.GiaType(giaType),
		Subject: sdamgia.Subject(subject),
	}
	if err := s.Validate(); err != nil {
		fatal("invalid scope", err)
	}
	return s
}

// newClient constructs the site client, wiring in formula recognition
// when the caller asks for it and a gemini key is configured.
func newClient(withRecognizer bool) *sdamgia.Client {
	opts := sdamgia.ClientOptions{}
	if withRecognizer {
		cfg, err := configutil.ReadRecursively[Config]("config.json5")
		if err != nil {
			fatal("failed to read config", err)
		}
		if cfg.GeminiApiKey == "" {
			fatal("formula recognition requires a gemini api key", fmt.Errorf("gemini_api_key is empty in config.json5"))
		}
		opts.Recognizer = latexocr.NewClient(latexocr.ClientOptions{
			ApiKey: cfg.GeminiApiKey,
		})
	}

	client, err := sdamgia.NewClient(opts)
	if err != nil {
		fatal("failed to initialize client", err)
	}
	return client
}

func printJson(value any) {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fatal("failed to marshal output", err)
	}
	fmt.Println(string(out))
}
