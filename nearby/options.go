package nearby

import (
	"fmt"
	"strings"

	"github.com/viant/pointdb/geo"
)

const (
	kindRangeTree = "rangetree"
	kindBrute     = "brute"
)

type tableOptions struct {
	name   string // published index
	source string // table with x and y columns
	kind   string
}

// parseTableOptions reads the USING pointdb(...) arguments. A bare first
// argument is the published index name; the rest are key=value pairs.
func parseTableOptions(args []string) (tableOptions, error) {
	opts := tableOptions{kind: kindRangeTree}
	for i, raw := range args {
		a := unquote(strings.TrimSpace(raw))
		if a == "" {
			continue
		}
		parts := strings.SplitN(a, "=", 2)
		if len(parts) != 2 {
			if i == 0 {
				opts.name = a
			}
			continue
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		val := unquote(strings.TrimSpace(parts[1]))
		switch key {
		case "index", "name":
			opts.name = val
		case "source":
			opts.source = val
		case "kind":
			switch strings.ToLower(val) {
			case kindRangeTree, "range", "tree":
				opts.kind = kindRangeTree
			case kindBrute, "bruteforce":
				opts.kind = kindBrute
			default:
				return opts, fmt.Errorf("nearby: unsupported index kind %q", val)
			}
		}
	}
	switch {
	case opts.name == "" && opts.source == "":
		return opts, fmt.Errorf("nearby: an index name or source=<table> is required")
	case opts.name != "" && opts.source != "":
		return opts, fmt.Errorf("nearby: index %q and source %q are mutually exclusive", opts.name, opts.source)
	case opts.source != "" && !geo.ValidTableName(opts.source):
		return opts, fmt.Errorf("nearby: invalid source table %q", opts.source)
	}
	return opts, nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		switch s[0] {
		case '\'', '"', '`':
			if s[len(s)-1] == s[0] {
				return s[1 : len(s)-1]
			}
		}
	}
	return s
}
