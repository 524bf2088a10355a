package main

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"roadview/internal/geom"
	"roadview/internal/plot"
	"roadview/internal/roadmap"
	"roadview/internal/style"
	"roadview/internal/tui"
)

func loadStyle(path string) (style.Style, error) {
	if path == "" {
		return style.Default(), nil
	}
	log.Printf("loading style %s", path)
	return style.LoadFile(path)
}

func runPoints(cmd *cobra.Command, opts *options, args []string) error {
	st, err := loadStyle(opts.stylePath)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "display.")

	name := "sample"
	pl := geom.NewPolyline(geom.SamplePairs())
	if len(args) == 1 {
		name = args[0]
		if pl, err = geom.LoadPairs(name); err != nil {
			return err
		}
	}
	log.Printf("%s: %d points", name, pl.Len())
	d := geom.NewData(geom.Layer{Kind: geom.LayerLine, Lines: []geom.Polyline{pl}})
	return show(opts, name, d, st)
}

func runMap(cmd *cobra.Command, opts *options, path string) error {
	st, err := loadStyle(opts.stylePath)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "display.")

	res, err := roadmap.Extract(path)
	if err != nil {
		return err
	}
	s := res.Summary()
	log.Printf("%s: reference_lines=%d left_boundaries=%d right_boundaries=%d points=%d",
		path, s.ReferenceLines, s.LeftBoundaries, s.RightBoundaries, s.Points)
	return show(opts, path, res.Data(), st)
}

// show saves the figure when --out is set and opens the viewer otherwise.
func show(opts *options, name string, d geom.Data, st style.Style) error {
	if opts.out != "" {
		if err := plot.Save(opts.out, d, st); err != nil {
			return err
		}
		log.Printf("figure saved to %s", opts.out)
		return nil
	}
	m := tui.NewWithData(filepath.Base(name), d).WithStyle(st)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

func runExtract(cmd *cobra.Command, opts *options, path string) error {
	res, err := roadmap.Extract(path)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	switch opts.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "dump":
		_, err := fmt.Fprint(w, spew.Sdump(res))
		return err
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or dump)", opts.format)
	}
}
