package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pageza/pantry-match/backend/config"
	"github.com/pageza/pantry-match/backend/internal/logger"
	"github.com/pageza/pantry-match/backend/internal/service"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect IMAGE",
		Short: "Detect pantry ingredients in a photo",
		Long: `Send a photo to the configured vision API and print the pantry ingredients
found in it. Without CLARIFAI_API_KEY the demo ingredients are printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}

			var detector service.Detector
			if !cfg.DemoDetection() {
				detector = service.NewClarifaiDetector(cfg.ClarifaiAPIKey, cfg.ClarifaiAPIURL, nil)
			}
			svc := service.NewDetectionService(detector, nil, service.DetectionConfig{
				MinConfidence: cfg.DetectionMinConfidence,
				Timeout:       cfg.DetectionTimeout,
			}, logger.Must(cfg.LogLevel, "console"))

			result, err := svc.DetectIngredients(context.Background(), base64.StdEncoding.EncodeToString(data))
			if err != nil {
				return err
			}
			if result.Failed {
				return fmt.Errorf("ingredient detection failed; see log for details")
			}

			out := cmd.OutOrStdout()
			for _, ing := range result.Ingredients {
				fmt.Fprintln(out, ing)
			}
			if result.Source == service.SourceDemo {
				fmt.Fprintln(cmd.ErrOrStderr(), "(demo ingredients: CLARIFAI_API_KEY is not set)")
			}
			return nil
		},
	}
}
