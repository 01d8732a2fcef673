package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/ddvk/lrtrack/internal/config"
	"github.com/ddvk/lrtrack/lrb"
	"github.com/ddvk/lrtrack/track"
)

type summary struct {
	Title             string         `yaml:"title"`
	Artist            string         `yaml:"artist,omitempty"`
	GridVersion       string         `yaml:"grid_version"`
	StartPosition     string         `yaml:"start_position"`
	Features          []string       `yaml:"features,omitempty"`
	StandardLines     int            `yaml:"standard_lines"`
	AccelerationLines int            `yaml:"acceleration_lines"`
	SceneryLines      int            `yaml:"scenery_lines"`
	Layers            int            `yaml:"layers,omitempty"`
	LayerFolders      int            `yaml:"layer_folders,omitempty"`
	Riders            int            `yaml:"riders,omitempty"`
	Triggers          map[string]int `yaml:"triggers,omitempty"`
	Warnings          []string       `yaml:"warnings,omitempty"`
}

func summarize(t *track.Track, warnings []lrb.Warning) summary {
	md := t.Metadata()
	s := summary{
		Title:             md.Title(),
		GridVersion:       md.GridVersion().String(),
		StartPosition:     md.StartPosition().String(),
		StandardLines:     len(t.LineGroup().StandardLines()),
		AccelerationLines: len(t.LineGroup().AccelerationLines()),
		SceneryLines:      len(t.LineGroup().SceneryLines()),
		Triggers:          map[string]int{},
	}
	s.Artist, _ = md.Artist()
	for _, f := range t.Features().List() {
		s.Features = append(s.Features, f.String())
	}
	if g, ok := t.LayerGroup(); ok {
		s.Layers = len(g.Layers())
		folders, _ := g.LayerFolders()
		s.LayerFolders = len(folders)
	}
	if g, ok := t.RiderGroup(); ok {
		s.Riders = len(g.Riders())
	}
	if g, ok := t.BackgroundColorGroup(); ok {
		s.Triggers["background_color"] = len(g.Triggers())
	}
	if g, ok := t.LineColorGroup(); ok {
		s.Triggers["line_color"] = len(g.Triggers())
	}
	if g, ok := t.CameraZoomGroup(); ok {
		s.Triggers["camera_zoom"] = len(g.Triggers())
	}
	if g, ok := t.LegacyCameraZoomGroup(); ok {
		s.Triggers["legacy_camera_zoom"] = len(g.Triggers())
	}
	for _, w := range warnings {
		s.Warnings = append(s.Warnings, w.String())
	}
	return s
}

func (s summary) rows() [][]string {
	rows := [][]string{
		{"Title", s.Title},
		{"Artist", s.Artist},
		{"Grid version", s.GridVersion},
		{"Start position", s.StartPosition},
		{"Standard lines", strconv.Itoa(s.StandardLines)},
		{"Acceleration lines", strconv.Itoa(s.AccelerationLines)},
		{"Scenery lines", strconv.Itoa(s.SceneryLines)},
	}
	for _, f := range s.Features {
		rows = append(rows, []string{"Feature", f})
	}
	if s.Layers+s.LayerFolders > 0 {
		rows = append(rows, []string{"Layers", fmt.Sprintf("%d (%d folders)", s.Layers, s.LayerFolders)})
	}
	if s.Riders > 0 {
		rows = append(rows, []string{"Riders", strconv.Itoa(s.Riders)})
	}
	for _, name := range []string{"background_color", "line_color", "camera_zoom", "legacy_camera_zoom"} {
		if n, ok := s.Triggers[name]; ok {
			rows = append(rows, []string{"Triggers " + name, strconv.Itoa(n)})
		}
	}
	for _, w := range s.Warnings {
		rows = append(rows, []string{"Warning", w})
	}
	return rows
}

func newInspectCommand(a *app) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print a summary of a track file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Convert.From
			}
			if output == "" {
				output = a.cfg.Inspect.Output
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			t, warnings, err := decode(format, data)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			s := summarize(t, warnings)

			switch output {
			case config.OutputYAML:
				out, err := yaml.Marshal(s)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			case config.OutputTable:
				_, err = fmt.Fprintln(cmd.OutOrStdout(), renderSummary(s.rows()))
				return err
			}
			return fmt.Errorf("unknown output %q", output)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: lrb or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "table or yaml")
	return cmd
}
