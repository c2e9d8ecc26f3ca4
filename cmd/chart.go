package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/moodtrack/internal/chart"
	"github.com/spf13/cobra"
)

var (
	chartOut    string
	chartWidth  int
	chartHeight int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Draw the mood chart",
	Long: `Draw the mood chart in the terminal, or write it as a PNG image with --out.

The chart shows the ten-day sample series, the same one the Mood Graph tab shows.`,
	Example: `  moodtrack chart
  moodtrack chart --width 100 --height 30
  moodtrack chart --out mood.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return chartRun(cmd.OutOrStdout(), chartOut, chartWidth, chartHeight)
	},
}

func chartRun(w io.Writer, out string, width, height int) error {
	points := chart.SampleSeries(clock.Now())

	if out == "" {
		if width <= 0 {
			width = 72
		}
		if height <= 0 {
			height = 20
		}
		c := chart.NewCanvas(width, height)
		c.Draw(points)
		_, err := fmt.Fprintln(w, c.String())
		return err
	}

	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 400
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	if err := chart.RenderPNG(f, points, width, height); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing chart file: %w", err)
	}
	logger.Info().Str("path", out).Int("width", width).Int("height", height).Msg("chart written")
	fmt.Fprintf(w, "Wrote %s\n", out)
	return nil
}

func init() {
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "", "write a PNG image to this path")
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "width in columns, or pixels with --out")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "height in rows, or pixels with --out")
	rootCmd.AddCommand(chartCmd)
}
