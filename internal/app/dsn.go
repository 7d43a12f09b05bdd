package app

import (
	"net/url"
	"strings"
)

// databaseTarget is DB_URL resolved into what the pool and its spans need.
type databaseTarget struct {
	dsn  string
	name string
	host string
}

// parseDatabaseTarget accepts both postgres:// URLs and key=value DSNs.
// The prepared-binary flag is only appended to URL style targets and never
// overrides a value already present.
func parseDatabaseTarget(raw string, disablePreparedBinary bool) databaseTarget {
	raw = strings.TrimSpace(raw)
	target := databaseTarget{dsn: raw}

	parsed, err := url.Parse(raw)
	if err == nil && parsed.Scheme != "" {
		target.name = strings.TrimPrefix(parsed.Path, "/")
		target.host = parsed.Hostname()
		if disablePreparedBinary {
			query := parsed.Query()
			if !query.Has("disable_prepared_binary_result") {
				query.Set("disable_prepared_binary_result", "yes")
				parsed.RawQuery = query.Encode()
				target.dsn = parsed.String()
			}
		}
		return target
	}

	for _, token := range strings.Fields(raw) {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		switch key {
		case "dbname":
			target.name = value
		case "host":
			target.host = value
		}
	}
	return target
}
