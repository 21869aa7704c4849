// Shared helpers for tablecore CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ofekshp/TableCore/internal/seed"
	"github.com/ofekshp/TableCore/internal/storage"
	"github.com/ofekshp/TableCore/internal/table"
	"github.com/ofekshp/TableCore/pkg/types"
)

// closer releases the backend store a session was opened over.
type closer func() error

// openSession resolves the data directory, opens the configured backend and
// builds a session over it. The caller must invoke the returned closer.
func openSession() (*table.Session, closer, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("ensure data dir: %w", err)
	}

	store, close, err := openStore(dataDir)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	sess, err := table.NewSession(storage.NewMirror(store), table.Config{
		PageSize: cfgPageSize,
		Seed:     func() types.TableData { return seed.Generate(cfgSeedRows) },
		Logger:   logger,
	})
	if err != nil {
		close()
		return nil, nil, fmt.Errorf("open session: %w", err)
	}

	return sess, func() error {
		sess.Close()
		return close()
	}, nil
}

// openStore builds the key-value store named by the backend setting.
func openStore(dataDir string) (storage.Store, closer, error) {
	switch backend := resolveBackend(); backend {
	case "sqlite", "":
		s, err := storage.OpenSQLite(filepath.Join(dataDir, "session.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, s.Close, nil
	case "file":
		s, err := storage.OpenFile(filepath.Join(dataDir, "session.json"))
		if err != nil {
			return nil, nil, fmt.Errorf("open file store: %w", err)
		}
		return s, func() error { return nil }, nil
	case "badger":
		s, err := storage.OpenBadger(filepath.Join(dataDir, "badger"))
		if err != nil {
			return nil, nil, fmt.Errorf("open badger store: %w", err)
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (valid: sqlite, file, badger)", backend)
	}
}

// parseCellArg splits a col=value argument and converts the value per the
// column's type.
func parseCellArg(sess *table.Session, arg string) (string, types.Value, error) {
	parts := strings.SplitN(arg, "=", 2)
	if len(parts) != 2 {
		return "", types.Value{}, fmt.Errorf("invalid cell %q (expected column=value)", arg)
	}
	colID, raw := parts[0], parts[1]

	col, ok := sess.Registry().Lookup(colID)
	if !ok {
		return "", types.Value{}, fmt.Errorf("unknown column %q (valid: %s)", colID, columnIDList(sess))
	}

	v, err := parseValue(col, raw)
	if err != nil {
		return "", types.Value{}, err
	}
	return colID, v, nil
}

// parseValue converts raw CLI text into a typed cell value for the column.
func parseValue(col types.Column, raw string) (types.Value, error) {
	switch col.Type {
	case types.TypeString:
		return types.String(raw), nil
	case types.TypeNumber:
		if raw == "" {
			return types.Value{}, nil
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return types.Value{}, fmt.Errorf("column %q wants a number, got %q", col.ID, raw)
		}
		return types.Number(n), nil
	case types.TypeBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return types.Value{}, fmt.Errorf("column %q wants true or false, got %q", col.ID, raw)
		}
		return types.Bool(b), nil
	case types.TypeSelect:
		return types.Select(raw), nil
	default:
		return types.Value{}, fmt.Errorf("column %q has unsupported type %q", col.ID, col.Type)
	}
}

// columnIDList joins the session's column ids for error messages.
func columnIDList(sess *table.Session) string {
	cols := sess.Columns()
	ids := make([]string, 0, len(cols))
	for _, col := range cols {
		ids = append(ids, col.ID)
	}
	return strings.Join(ids, ", ")
}

// visibleColumns returns the session's columns the view currently shows,
// in ordinal order.
func visibleColumns(sess *table.Session) []types.Column {
	view := sess.View()
	cols := make([]types.Column, 0, len(sess.Columns()))
	for _, col := range sess.Columns() {
		if view.IsVisible(col.ID) {
			cols = append(cols, col)
		}
	}
	return cols
}

// printRows renders rows either as a tab-aligned table or, with --json,
// as the flat row objects.
func printRows(sess *table.Session, rows []types.Row) error {
	if flagJSON {
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal rows: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	cols := visibleColumns(sess)

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	header := []string{"ID"}
	for _, col := range cols {
		header = append(header, col.Title)
	}
	header = append(header, "Note")
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, row := range rows {
		record := []string{row.ID}
		for _, col := range cols {
			record = append(record, row.CellOrZero(col).Display())
		}
		record = append(record, row.Note)
		fmt.Fprintln(w, strings.Join(record, "\t"))
	}
	return w.Flush()
}

// printFieldErrors writes per-field validation messages in a stable order.
func printFieldErrors(fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", k, fields[k])
	}
}

// fail prints the error and exits: validation and lookup failures are user
// errors, anything else is a system error.
func fail(prefix string, err error) {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "%s: validation failed\n", prefix)
		printFieldErrors(verr.Fields)
		os.Exit(exitUserError)
	}
	if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrUnknownColumn) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err)
		os.Exit(exitUserError)
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err)
	os.Exit(exitSysError)
}
