package staticdata

import (
	"strconv"
	"strings"
)

// CompareVersions compares dot-separated versions field by field as integers.
// Missing fields count as zero, so "6.24" == "6.24.0". Non-numeric fields also
// count as zero. It returns -1, 0 or +1.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	n := max(len(as), len(bs))
	for i := 0; i < n; i++ {
		x, y := versionField(as, i), versionField(bs, i)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// IsNewer reports whether version a is strictly newer than version b.
func IsNewer(a, b string) bool {
	return CompareVersions(a, b) > 0
}

func versionField(fields []string, i int) int {
	if i >= len(fields) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
	if err != nil {
		return 0
	}
	return n
}
