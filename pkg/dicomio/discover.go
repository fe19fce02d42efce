package dicomio

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// instancePattern matches the trailing instance number of DICOM filenames
// like "1-05.dcm".
var instancePattern = regexp.MustCompile(`(\d+)\.dcm$`)

// DiscoverPair locates an in-phase/out-of-phase acquisition pair in a
// directory of DICOM files using the series naming convention of dual-echo
// exports: even instance numbers are in-phase, odd numbers are
// out-of-phase, and consecutive instances belong to the same slice
// position. The lowest-numbered adjacent (odd, even) pair wins, which keeps
// discovery deterministic.
//
// This convention lives entirely here; the pipeline itself never depends on
// file naming.
func DiscoverPair(dir string) (inPhasePath, outPhasePath string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", "", errors.Wrapf(err, "reading directory %s", dir)
	}

	byInstance := make(map[int]string)
	var numbers []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.ToLower(filepath.Ext(name)) != ".dcm" {
			continue
		}
		match := instancePattern.FindStringSubmatch(strings.ToLower(name))
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if _, seen := byInstance[n]; !seen {
			byInstance[n] = filepath.Join(dir, name)
			numbers = append(numbers, n)
		}
	}

	sort.Ints(numbers)

	for _, n := range numbers {
		if n%2 != 0 {
			continue
		}
		// Even instance (in-phase): pair it with the preceding odd
		// instance (out-of-phase) of the same slice position.
		if odd, ok := byInstance[n-1]; ok {
			return byInstance[n], odd, nil
		}
	}

	return "", "", errors.Errorf("no adjacent in-phase/out-of-phase pair found in %s", dir)
}
