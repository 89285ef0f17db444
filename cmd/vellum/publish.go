package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"
	"github.com/vellum-dev/vellum/internal/gallery"
	"github.com/vellum-dev/vellum/pkg/publish"
	"github.com/vellum-dev/vellum/pkg/render"
)

func publishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render the gallery and publish it to disk or S3",
		Long: `Render every gallery page and write it to a target: a local
directory (--out) or an S3 bucket (--s3-bucket). With --assets, files
matching --assets-pattern under the given directory are copied too.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}

			renderCfg, err := renderConfigByName(getString("render", "publish.preset", "compact"))
			if err != nil {
				return err
			}

			target, err := buildTarget()
			if err != nil {
				return err
			}

			p := &publish.Publisher{
				Target: target,
				Render: renderCfg,
				Logger: newLogger(),
			}

			pages := make(map[string]*render.Document)
			for _, page := range gallery.Pages() {
				pages[page.OutputKey()] = page.Doc()
			}
			if err := p.Site(cmd.Context(), pages); err != nil {
				return err
			}

			published := len(pages)
			if assetsDir := getString("assets", "publish.assets.dir", ""); assetsDir != "" {
				patterns := getStrings("assets-pattern", "publish.assets.patterns", []string{"**/*"})
				n, err := p.Assets(cmd.Context(), assetsDir, patterns, getString("assets-ignore", "publish.assets.ignore", ""))
				if err != nil {
					return err
				}
				published += n
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("published %d files", published)))
			return nil
		},
	}

	cmd.Flags().String("render", "", "Render preset: compact|pretty|email|optimized")
	cmd.Flags().String("out", "", "Publish to this local directory")
	cmd.Flags().String("s3-bucket", "", "Publish to this S3 bucket")
	cmd.Flags().String("s3-prefix", "", "Key prefix inside the bucket")
	cmd.Flags().String("s3-region", "", "Bucket region")
	cmd.Flags().String("s3-base-url", "", "Public base URL reported for published keys")
	cmd.Flags().String("assets", "", "Also publish static assets from this directory")
	cmd.Flags().StringSlice("assets-pattern", nil, "Asset glob patterns (default **/*)")
	cmd.Flags().String("assets-ignore", "", "Ignore file (gitignore syntax) relative to the assets dir")

	return cmd
}

// buildTarget picks the publish target from configuration. --out and
// --s3-bucket are mutually exclusive.
func buildTarget() (publish.Target, error) {
	out := getString("out", "publish.out", "")
	bucket := getString("s3-bucket", "publish.s3.bucket", "")

	switch {
	case out != "" && bucket != "":
		return nil, fmt.Errorf("--out and --s3-bucket are mutually exclusive")
	case bucket != "":
		client := s3.New(s3.Options{
			Region: getString("s3-region", "publish.s3.region", "us-east-1"),
		})
		return &publish.S3{
			Client:  client,
			Bucket:  bucket,
			Prefix:  getString("s3-prefix", "publish.s3.prefix", ""),
			BaseURL: getString("s3-base-url", "publish.s3.base-url", ""),
		}, nil
	case out != "":
		return publish.NewDisk(out)
	default:
		return nil, fmt.Errorf("need a target: --out DIR or --s3-bucket NAME")
	}
}

func getStrings(flagKey, configKey string, def []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return def
}
