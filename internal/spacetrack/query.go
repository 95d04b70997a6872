package spacetrack

import (
	"strconv"
	"strings"
)

const (
	// BaseURL is the production Space-Track endpoint.
	BaseURL = "https://www.space-track.org"

	loginPath = "/ajaxauth/login"
)

// BuildQuery returns the gp-class query path for the given catalog IDs,
// comma-joined in the order given. Duplicates and ordering are preserved;
// invalid IDs are the server's to reject. Results are ordered server-side
// by the first TLE line ascending, formatted as JSON.
func BuildQuery(noradIDs []int) string {
	ids := make([]string, len(noradIDs))
	for i, id := range noradIDs {
		ids[i] = strconv.Itoa(id)
	}
	var b strings.Builder
	b.WriteString("/basicspacedata/query/class/gp/NORAD_CAT_ID/")
	b.WriteString(strings.Join(ids, ","))
	b.WriteString("/orderby/TLE_LINE1%20ASC/format/json")
	return b.String()
}
