// Shared helpers for channelstore CLI commands.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/feedforge/channelstore/internal/sqlite"
)

// openStore resolves the database path, opens the store, and ensures the
// schema. The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve db path: %w", err)
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.EnsureSchema(); err != nil {
		store.Close()
		return nil, err
	}

	return store, nil
}

// parseID converts a positional id argument to the integer identity the
// store uses.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// splitList turns the CLI's comma-separated input into the list form the
// store expects. Items are trimmed, blanks dropped. The store itself never
// parses delimited text.
func splitList(raw string) []string {
	list := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// joinList formats a decoded list for table display.
func joinList(list []string) string {
	return strings.Join(list, ",")
}

// yesNo formats a boolean for table display.
func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// confirmDelete prompts for confirmation of a destructive operation unless
// skip is set. Cascading scope is spelled out by the caller in what.
func confirmDelete(in io.Reader, out io.Writer, what string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}
	fmt.Fprintf(out, "Delete %s? [y/N]: ", what)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
