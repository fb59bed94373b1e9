package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/backstory/cmd/backstory-cli/internal/output"
	"github.com/nfrund/backstory/internal/choreography"
	"github.com/nfrund/backstory/internal/content"
	"github.com/nfrund/backstory/internal/navbar"
	"github.com/nfrund/backstory/internal/schedule"
	"github.com/nfrund/backstory/internal/scrolllock"
	"github.com/nfrund/backstory/internal/scrollfx"
	"github.com/nfrund/backstory/internal/splash"
)

var (
	sampleWidth  float64
	sampleHeight float64
	sampleSteps  int
	sampleFormat string

	simVideo  time.Duration
	simSkipAt time.Duration
	simFail   bool
)

var choreoCmd = &cobra.Command{
	Use:   "choreo",
	Short: "Inspect the scroll choreography",
}

var choreoManifestCmd = &cobra.Command{
	Use:   "manifest [path]",
	Short: "Print the choreography manifest the page embeds",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		site, err := content.Load(afero.NewOsFs(), path)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(choreography.Build(site))
	},
}

var choreoSampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample the About program for a viewport",
	Long: `Evaluate the About program selected for the given viewport at evenly
spaced progress values.

Examples:
  backstory-cli choreo sample --width 1280 --height 800
  backstory-cli choreo sample --width 390 --height 844 --steps 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prog := scrollfx.SelectProgram(scrollfx.Viewport{Width: sampleWidth, Height: sampleHeight})
		states := scrollfx.Sample(prog, sampleSteps)
		return output.Write(cmd.OutOrStdout(), sampleFormat, sampleTable(prog, states), states)
	},
}

func sampleTable(prog scrollfx.Program, states []scrollfx.StyleState) output.Table {
	t := output.Table{Title: fmt.Sprintf("%s program, pinned for %.0fpx", prog.Name(), prog.PinDistance())}
	if prog.Name() == scrollfx.DesktopName {
		t.Header = []string{"Progress", "Width", "Height", "Radius"}
		for _, s := range states {
			t.Rows = append(t.Rows, []any{f2(s.Progress), f2(s.Width), f2(s.Height), f2(s.BorderRadius)})
		}
		return t
	}
	t.Header = []string{"Progress", "Step", "Clip RX", "Clip RY", "Image Y", "Image Scale", "Text Opacity", "Text Y"}
	for _, s := range states {
		t.Rows = append(t.Rows, []any{f2(s.Progress), s.Step + 1, f2(s.ClipRX), f2(s.ClipRY), f2(s.ImageY), f2(s.ImageScale), f2(s.TextOpacity), f2(s.TextY)})
	}
	return t
}

func f2(v float64) string { return fmt.Sprintf("%.2f", v) }

var choreoSimulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Step the splash gate, nav bar and menu on a virtual clock",
	Long: `Run the page's timed state machines without a browser: the splash gate
plays, ends (or is skipped, or fails) and fades; the hero then scrolls away and
the menu opens and closes. Every step prints the resulting state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := simulate(simVideo, simSkipAt, simFail)
		t := output.Table{Header: []string{"At", "Event", "Splash", "Scroll Locked", "Nav Hidden", "Menu"}}
		for _, r := range rows {
			t.Rows = append(t.Rows, []any{r.At, r.Event, r.Splash, r.Locked, r.NavHidden, r.Menu})
		}
		output.RenderTable(cmd.OutOrStdout(), t)
		return nil
	},
}

type simRow struct {
	At        time.Duration
	Event     string
	Splash    splash.State
	Locked    bool
	NavHidden bool
	Menu      bool
}

func simulate(video, skipAt time.Duration, fail bool) []simRow {
	clock := schedule.NewManual()
	lock := scrolllock.New()
	gate := splash.New(lock, clock)
	defer gate.Close()
	menu := navbar.NewMenu(lock)
	defer menu.Release()
	var nav navbar.Tracker

	var rows []simRow
	record := func(event string) {
		rows = append(rows, simRow{
			At:        clock.Now(),
			Event:     event,
			Splash:    gate.State(),
			Locked:    lock.Locked(),
			NavHidden: nav.Hidden(),
			Menu:      menu.IsOpen(),
		})
	}

	nav.Observe(1)
	record("load")

	switch {
	case fail:
		gate.MediaError()
		record("media error")
	case skipAt > 0 && skipAt < video:
		clock.Advance(skipAt)
		gate.Skip()
		record("skip")
	default:
		clock.Advance(video)
		gate.MediaEnded()
		record("media ended")
	}
	clock.Advance(splash.DefaultFade)
	record("fade elapsed")

	for _, ratio := range []float64{0.6, navbar.HideThreshold, 0.1, 0} {
		if _, changed := nav.Observe(ratio); changed {
			record(fmt.Sprintf("hero ratio %.2f", ratio))
		}
	}

	menu.Open()
	record("menu open")
	menu.Close()
	record("menu close")
	return rows
}

func init() {
	choreoSampleCmd.Flags().Float64Var(&sampleWidth, "width", 1280, "Viewport width in CSS pixels")
	choreoSampleCmd.Flags().Float64Var(&sampleHeight, "height", 800, "Viewport height in CSS pixels")
	choreoSampleCmd.Flags().IntVar(&sampleSteps, "steps", 4, "Number of progress intervals")
	choreoSampleCmd.Flags().StringVarP(&sampleFormat, "format", "f", output.FormatTable, "Output format (table, json)")

	choreoSimulateCmd.Flags().DurationVar(&simVideo, "video", 4*time.Second, "Length of the splash video")
	choreoSimulateCmd.Flags().DurationVar(&simSkipAt, "skip-at", 0, "Press skip at this time (0 lets the video end)")
	choreoSimulateCmd.Flags().BoolVar(&simFail, "fail", false, "Fail the splash video immediately")

	choreoCmd.AddCommand(choreoManifestCmd, choreoSampleCmd, choreoSimulateCmd)
	rootCmd.AddCommand(choreoCmd)
}
