package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// queryInt reads a non-negative integer query parameter. A missing
// parameter yields def.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidQuery(fmt.Sprintf("%s must be an integer, got %q", name, raw), err)
	}
	if n < 0 {
		return 0, errInvalidQuery(fmt.Sprintf("%s must be >= 0, got %d", name, n), nil)
	}
	return n, nil
}
