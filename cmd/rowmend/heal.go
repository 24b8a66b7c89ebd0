package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rowmend/rowmend/audit"
	"github.com/rowmend/rowmend/heal"
)

var (
	healIn      string
	healOut     string
	healAudit   string
	healAuditDB string
)

var healCmd = &cobra.Command{
	Use:   "heal",
	Short: "Heal a corrupted delimited file",
	Long: `Heal reads a delimited file, repairs corrupted rows against the
configured schema and reference sets, and writes the usable rows back
out. The audit trail can be written as JSON Lines, to a SQLite
database, or both.`,
	RunE: runHeal,
}

func init() {
	healCmd.Flags().StringVarP(&healIn, "in", "i", "", "input file (required)")
	healCmd.Flags().StringVarP(&healOut, "out", "o", "", "output file for healed rows (default stdout)")
	healCmd.Flags().StringVar(&healAudit, "audit", "", "write the audit trail as JSON Lines to this file")
	healCmd.Flags().StringVar(&healAuditDB, "audit-db", "", "write the audit trail to this SQLite database")
	_ = healCmd.MarkFlagRequired("in")
}

func runHeal(cmd *cobra.Command, args []string) error {
	healer, cfg, err := buildHealer()
	if err != nil {
		return err
	}

	rows, err := readRows(healIn, cfg.SkipHeader)
	if err != nil {
		return err
	}
	logger.Info("healing file",
		zap.String("path", healIn),
		zap.Int("rows", len(rows)))

	res, err := healer.HealAll(cmd.Context(), rows)
	if err != nil {
		return fmt.Errorf("heal batch: %w", err)
	}

	if err := writeRecords(healOut, cfg, res.Records); err != nil {
		return err
	}
	if err := writeAudit(res); err != nil {
		return err
	}

	st := audit.Replay(res.Entries)
	fmt.Printf("rows: %d  clean: %d  healed: %d  rejected: %d  corrections: %d\n",
		st.Rows, st.Clean, st.Healed, st.Rejected, st.Corrections)
	for reason, n := range st.Reasons {
		fmt.Printf("  rejected (%s): %d\n", reason, n)
	}
	return nil
}

// buildHealer loads the config and wires the healer with the CLI
// logger.
func buildHealer() (*heal.Healer, *Config, error) {
	if cfgPath == "" {
		return nil, nil, fmt.Errorf("--config is required")
	}
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	s, err := cfg.Schema()
	if err != nil {
		return nil, nil, fmt.Errorf("build schema: %w", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, err
	}
	opts.Logger = logger
	healer, err := heal.New(s, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("build healer: %w", err)
	}
	return healer, cfg, nil
}

// readRows loads the input lines, optionally dropping a header row.
func readRows(path string, skipHeader bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var rows []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	first := true
	for sc.Scan() {
		if first && skipHeader {
			first = false
			continue
		}
		first = false
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return rows, nil
}

// writeRecords emits the healed records, rejoined with the configured
// delimiter, preceded by a header when the input carried one.
func writeRecords(path string, cfg *Config, records []heal.HealedRecord) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	delim := cfg.Delimiter
	if delim == "" {
		delim = "|"
	}
	if cfg.SkipHeader {
		names := make([]string, len(cfg.Fields))
		for i, f := range cfg.Fields {
			names[i] = f.Name
		}
		fmt.Fprintln(w, strings.Join(names, delim))
	}
	for _, r := range records {
		fmt.Fprintln(w, strings.Join(r.Record, delim))
	}
	return w.Flush()
}

// writeAudit drains the batch trail into the requested sinks.
func writeAudit(res *heal.BatchResult) error {
	if healAudit != "" {
		f, err := os.Create(healAudit)
		if err != nil {
			return fmt.Errorf("create audit file: %w", err)
		}
		sink := audit.NewJSONLSink(f)
		if err := audit.Drain(sink, res.Entries); err != nil {
			sink.Close()
			return fmt.Errorf("write audit: %w", err)
		}
		if err := sink.Close(); err != nil {
			return fmt.Errorf("close audit: %w", err)
		}
	}
	if healAuditDB != "" {
		sink, err := audit.NewSQLiteSink(healAuditDB)
		if err != nil {
			return err
		}
		if err := audit.Drain(sink, res.Entries); err != nil {
			sink.Close()
			return fmt.Errorf("write audit db: %w", err)
		}
		if err := sink.Close(); err != nil {
			return fmt.Errorf("close audit db: %w", err)
		}
	}
	return nil
}
