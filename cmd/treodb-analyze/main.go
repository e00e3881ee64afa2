package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/config"
	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/pkg/treodb"
)

var (
	rootCmd = &cobra.Command{
		Use:   "treodb-analyze [hex]",
		Short: "Decode Treo 680 SMS database records",
		Long:  "treodb-analyze decodes hex-encoded Treo 680 SMS message records using the treodb library.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if len(args) == 0 {
				return runInteractive(ctx, opts)
			}
			return runDecode(ctx, opts, args[0])
		},
	}

	configPath string
	timeZone   string
	retainRaw  bool
	debugLevel int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&timeZone, "timezone", "", "IANA zone used to render message date/time")
	rootCmd.PersistentFlags().BoolVar(&retainRaw, "retain-raw", false, "include the original record bytes in the output")
	rootCmd.PersistentFlags().IntVar(&debugLevel, "debug", 0, "diagnostics: 1 attaches a hex dump, 2 also logs decode warnings")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func buildOptions(cmd *cobra.Command) (treodb.DecodeOptions, error) {
	fileCfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return treodb.DecodeOptions{}, err
		}
		fileCfg = loaded
	}
	opts := treodb.DecodeOptions{
		TimeZone:      fileCfg.TimeZone,
		RetainRawData: fileCfg.RetainRaw,
		Debug:         fileCfg.Debug,
	}
	if cmd.Flags().Changed("timezone") {
		opts.TimeZone = timeZone
	}
	if cmd.Flags().Changed("retain-raw") {
		opts.RetainRawData = retainRaw
	}
	if cmd.Flags().Changed("debug") {
		opts.Debug = debugLevel
	}
	return opts, nil
}

func runInteractive(ctx context.Context, opts treodb.DecodeOptions) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("treodb analyze mode. Paste a hex record and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runDecode(ctx, opts, line); err != nil {
			logrus.WithError(err).Error("failed to decode record")
		}
	}
	return scanner.Err()
}

func runDecode(ctx context.Context, opts treodb.DecodeOptions, hex string) error {
	result, err := treodb.DecodeHexWithOptions(ctx, hex, opts)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}
