package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	verbose   bool
	stylePath string
	out       string
	format    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "roadview",
		Short: "Plot road map geometry and point pairs",
		Long: `roadview extracts reference lines and lane boundaries from road map XML files
and shows them in a terminal viewer or writes them to a figure file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFlags(0)
			log.SetPrefix("roadview: ")
			if opts.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
		},
	}

	pointsCmd := &cobra.Command{
		Use:   "points [file]",
		Short: "Plot a line of point pairs",
		Long: `Plot point pairs read from a .csv, .wkt or .txt file.
Without a file the fixed sample (1,1)..(5,5) is plotted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoints(cmd, opts, args)
		},
	}

	mapCmd := &cobra.Command{
		Use:   "map FILE",
		Short: "Plot the reference lines and lane boundaries of a map file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, opts, args[0])
		},
	}

	extractCmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Print the polylines extracted from a map file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts, args[0])
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVarP(&opts.stylePath, "style", "s", "", "YAML style file")

	pointsCmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the figure to this file instead of opening the viewer")
	mapCmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the figure to this file instead of opening the viewer")
	extractCmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: json, yaml or dump")

	rootCmd.AddCommand(pointsCmd, mapCmd, extractCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "roadview:", err)
		os.Exit(1)
	}
}
