package main

import (
	"fmt"
	"io"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/uadtools/listclean/pkg/io/csvio"
	iox "github.com/uadtools/listclean/pkg/io/ioutils"
	"github.com/uadtools/listclean/pkg/io/jsonlio"
	"github.com/uadtools/listclean/pkg/io/listio"
	"github.com/uadtools/listclean/pkg/io/parquetio"
	"github.com/uadtools/listclean/pkg/migrate"
	"github.com/uadtools/listclean/pkg/profile"
	"github.com/uadtools/listclean/pkg/transform/validate"
	u "github.com/uadtools/listclean/pkg/uadlist"
)

func newMigrateCmd(logger *charmlog.Logger) *cobra.Command {
	var in, out, cfgPath string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate a legacy list document to the current format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if cfgPath != "" {
				var err error
				if cfg, err = loadConfig(cfgPath); err != nil {
					return err
				}
			}
			if in != "" {
				cfg.Input.Path = in
			}
			if out != "" {
				cfg.Output.Path = out
			}
			p, err := cfg.pipeline()
			if err != nil {
				return err
			}
			d, err := listio.ReadFile(cfg.Input.Path)
			if err != nil {
				return err
			}
			logger.Debug("document loaded", "path", cfg.Input.Path, "records", d.Len())
			res, err := p.Run(cmd.Context(), d)
			if err != nil {
				return err
			}
			if err := listio.WriteFile(cfg.Output.Path, res); err != nil {
				return err
			}
			logger.Info("migrated", "records", res.Len(), "output", cfg.Output.Path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "input", "i", "", "input document (default "+migrate.DefaultInput+")")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output document (default "+migrate.DefaultOutput+")")
	cmd.Flags().StringVar(&cfgPath, "config", "", "step config file (json, toml, or yaml by extension)")
	return cmd
}

func newCheckCmd(logger *charmlog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Lint a migrated document against the known tiers and lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := listio.ReadFile(args[0])
			if err != nil {
				return err
			}
			p := u.NewPipeline().
				Add(&validate.Required{Fields: []string{"description", "removal", "list"}}).
				Add(validate.NewInSet("removal", u.KnownRemovals)).
				Add(validate.NewInSet("list", u.KnownLists))
			if _, err := p.Run(cmd.Context(), d); err != nil {
				return err
			}
			logger.Info("document ok", "records", d.Len())
			return nil
		},
	}
}

func newStatsCmd(logger *charmlog.Logger) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Summarize list composition (tiers, lists, legacy fields)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := iox.OpenReader(args[0])
			if err != nil {
				return err
			}
			b, err := io.ReadAll(rc)
			if cerr := rc.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			s, err := profile.CollectRaw(b)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if asJSON {
				out, err := s.ReportJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), s.ReportText())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON summary")
	return cmd
}

func newExportCmd(logger *charmlog.Logger) *cobra.Command {
	var out, format string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export a flat (package, list, removal, description) view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("--output is required")
			}
			d, err := listio.ReadFile(args[0])
			if err != nil {
				return err
			}
			f := format
			if f == "" {
				switch filepath.Ext(out) {
				case ".parquet":
					f = "parquet"
				case ".jsonl":
					f = "jsonl"
				default:
					f = "csv"
				}
			}
			switch f {
			case "jsonl":
				err = jsonlio.WriteAll(out, d)
			case "csv", "parquet":
				var recs []u.FlatRecord
				recs, err = d.Flatten()
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				if f == "csv" {
					err = csvio.WriteAll(out, recs, csvio.WriterOptions{})
				} else {
					err = parquetio.WriteAll(out, recs)
				}
			default:
				return fmt.Errorf("unsupported format %q", f)
			}
			if err != nil {
				return err
			}
			logger.Info("exported", "records", d.Len(), "format", f, "output", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "csv, jsonl, or parquet (default by extension)")
	return cmd
}
