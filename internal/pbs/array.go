package pbs

import (
	"regexp"
	"strconv"
	"strings"
)

// memberRowRe matches the job-id column of one array member row in a
// qstat -t listing, e.g. "2611898[3].pbsserver  Fault_Arr  baes ...".
// The container's own row ("2611898[].pbsserver") has empty brackets and
// does not match.
var memberRowRe = regexp.MustCompile(`^\s*(\d+)\[(\d+)\]`)

// ParseArrayListing extracts the member indices from a qstat -t listing.
// Rows that are not array-member rows (headers, separators, the container
// row itself) are skipped, not errors. Order is preserved exactly as
// listed; the scheduler typically emits ascending indices but does not
// guarantee it.
func ParseArrayListing(raw string) []int {
	var indices []int
	for _, line := range strings.Split(raw, "\n") {
		m := memberRowRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		indices = append(indices, idx)
	}
	return indices
}
