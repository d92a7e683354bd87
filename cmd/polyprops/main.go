package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/k-lessa/polyprops/internal/config"
	"github.com/k-lessa/polyprops/internal/logger"
	"github.com/k-lessa/polyprops/internal/server"
)

// inputFlags selects where vertices come from: a shapes file or the
// positional arguments.
type inputFlags struct {
	file string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "shapes file (.yaml, .yml, .json, .geojson)")
}

// vertexArgs lets negative coordinates through as positional arguments;
// see normalizeArgs. "--" also ends flag parsing explicitly.
var vertexArgs = map[string]string{vertexArgsAnnotation: "true"}

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeArgs(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile   string
		logLevel  string
		logFormat string
		cfg       config.Config
	)

	rootCmd := &cobra.Command{
		Use:          "polyprops",
		Short:        "Compute the area and centroid of simple polygons",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				loaded.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				loaded.LogFormat = logFormat
			}
			cfg = loaded
			logger.Setup(cfg.LogLevel, cfg.LogFormat).
				WithField("command", cmd.Name()).Debug("config loaded")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with POLYPROPS_* settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(areaCmd())
	rootCmd.AddCommand(centroidCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd(&cfg))

	return rootCmd
}

func areaCmd() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:         "area [--] [x1 y1 x2 y2 ...]",
		Short:       "Print the area of each polygon",
		Example:     "  polyprops area 0 0 1 0 1 -1\n  polyprops area -f shapes.yaml",
		Annotations: vertexArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArea(cmd.OutOrStdout(), in, args)
		},
	}
	in.register(cmd)
	return cmd
}

func centroidCmd() *cobra.Command {
	var (
		in   inputFlags
		area float64
	)

	cmd := &cobra.Command{
		Use:         "centroid [--] [x1 y1 x2 y2 ...]",
		Short:       "Print the centroid of each polygon",
		Example:     "  polyprops centroid 0 0 1 0 1 -1\n  polyprops centroid -f shapes.yaml",
		Annotations: vertexArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var supplied *float64
			if cmd.Flags().Changed("area") {
				supplied = &area
			}
			return runCentroid(cmd.OutOrStdout(), in, args, supplied)
		},
	}
	in.register(cmd)
	cmd.Flags().Float64Var(&area, "area", 0, "precomputed area to reuse (must match the vertices)")
	return cmd
}

func validateCmd() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:         "validate [--] [x1 y1 x2 y2 ...]",
		Short:       "Check vertex lists without computing anything",
		Example:     "  polyprops validate 0 0 1 0 1 -1\n  polyprops validate -f shapes.yaml",
		Annotations: vertexArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), in, args)
		},
	}
	in.register(cmd)
	return cmd
}

func reportCmd() *cobra.Command {
	var (
		in     inputFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:         "report [--] [x1 y1 x2 y2 ...]",
		Short:       "Print area, centroid and orientation for every polygon",
		Example:     "  polyprops report 0 0 1 0 1 -1\n  polyprops report -f shapes.yaml",
		Annotations: vertexArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), in, args, asJSON)
		},
	}
	in.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	return cmd
}

func exportCmd() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:         "export [--] [x1 y1 x2 y2 ...]",
		Short:       "Write polygons and their properties as a GeoJSON FeatureCollection",
		Example:     "  polyprops export 0 0 1 0 1 -1\n  polyprops export -f shapes.yaml",
		Annotations: vertexArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.OutOrStdout(), in, args)
		},
	}
	in.register(cmd)
	return cmd
}

func serveCmd(cfg *config.Config) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := *cfg
			if cmd.Flags().Changed("port") {
				c.Port = port
			}
			srv := server.New(c, logger.L())
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
