package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	voiceforge "github.com/voiceforge/client-go"
	"github.com/voiceforge/client-go/catalog"
)

const (
	envAPIKey  = "VOICEFORGE_API_KEY"
	envBaseURL = "VOICEFORGE_URL"
)

type rootFlags struct {
	text    string
	voice   string
	output  string
	stream  bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "voiceforge",
		Short: "Synthesize speech with the VoiceForge API",
		Long: `Synthesize speech with the VoiceForge API and write the audio to a file.

The API key is read from the ` + envAPIKey + ` environment variable or a
local .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.text, "text", "", "text to synthesize (required)")
	cmd.Flags().StringVar(&flags.voice, "voice", catalog.DefaultVoice, "voice name")
	cmd.Flags().StringVar(&flags.output, "output", "output.mp3", "output file path")
	cmd.Flags().BoolVar(&flags.stream, "stream", false, "stream audio to the file as it is generated")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")
	cmd.MarkFlagRequired("text")

	return cmd
}

func run(cmd *cobra.Command, flags *rootFlags) error {
	logger := newLogger(flags.verbose)

	// Best effort; a missing .env file is fine.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded credentials from .env")
	}

	apiKey := os.Getenv(envAPIKey)
	if apiKey == "" {
		return fmt.Errorf("%s is not set (export it or add it to .env)", envAPIKey)
	}

	voiceID, ok := catalog.VoiceID(flags.voice)
	if !ok {
		return fmt.Errorf("unknown voice %q (available: %s)",
			flags.voice, strings.Join(catalog.VoiceNames(), ", "))
	}

	opts := []voiceforge.Option{}
	if baseURL := os.Getenv(envBaseURL); baseURL != "" {
		logger.Debug("using custom endpoint", "url", baseURL)
		opts = append(opts, voiceforge.WithBaseURL(baseURL))
	}

	client, err := voiceforge.New(apiKey, opts...)
	if err != nil {
		return err
	}

	req := voiceforge.SpeechRequest{
		Text:         flags.text,
		VoiceID:      voiceID,
		ModelID:      catalog.DefaultModel,
		OutputFormat: catalog.DefaultFormat,
	}

	logger.Debug("synthesizing",
		"voice", flags.voice,
		"stream", flags.stream,
		"chars", len(flags.text))

	var path string
	if flags.stream {
		path, err = client.StreamSpeechToFile(cmd.Context(), req, flags.output)
	} else {
		path, err = client.GenerateSpeechToFile(cmd.Context(), req, flags.output)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
