package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rawbytedev/bindoc"
	"github.com/rawbytedev/bindoc/internal/logging"
	"github.com/rawbytedev/bindoc/pkg/docscan"
)

var (
	flagConfig   string
	flagPretty   bool
	flagLogLevel string

	runCfg toolConfig
)

var rootCmd = &cobra.Command{
	Use:   "bindoc",
	Short: "Parse BDL blocks embedded in documentation",
	Long: `bindoc extracts the binary payload described by a // BDL-META: header
and a fenced hex or base64 region, interprets it per the declared schema and
prints the result as JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadToolConfig(flagConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("pretty") {
			cfg.Pretty = flagPretty
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = flagLogLevel
		}
		logging.Configure(cfg.LogLevel)
		runCfg = cfg
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a single BDL block",
	Long:  "Parse one BDL block from a file or stdin and print the (meta, structure) pair.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		block, err := bindoc.ParseBlock(text)
		if err != nil {
			return err
		}
		log.Debug().Str("schema", block.Meta.SchemaName).Msg("block parsed")
		return emitJSON(cmd.OutOrStdout(), block)
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Parse every BDL block in a document",
	Long: `Scan a whole document for BDL blocks and print a per-block report array.
Blocks that fail to parse are reported in place and do not abort the scan.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		reports := docscan.Scan(text)
		log.Debug().Int("blocks", len(reports)).Msg("scan finished")
		return emitJSON(cmd.OutOrStdout(), reports)
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func emitJSON(w io.Writer, v any) error {
	var (
		out []byte
		err error
	)
	if runCfg.Pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to TOML config file")
	rootCmd.PersistentFlags().BoolVar(&flagPretty, "pretty", false, "indent JSON output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (trace..error, off)")
	rootCmd.AddCommand(parseCmd, scanCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bindoc: %v\n", err)
		os.Exit(1)
	}
}
