package inventory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/henderiw/rangeset/pkg/idrange"
)

// Database is the parsed form of an inventory file: the fresh id ranges and
// the available ids to check against them.
type Database struct {
	Ranges []idrange.Range
	IDs    []uint64
}

type section int

const (
	sectionRanges section = iota
	sectionIDs
)

// Parse reads a database made of one "from-to" range per line, a blank line,
// then one id per line. Blank lines before the ranges and after the ids are
// ignored. All malformed lines are reported together and no database is
// returned if there is any.
func Parse(r io.Reader) (*Database, error) {
	db := &Database{}
	var errs error

	sect := sectionRanges
	scanner := bufio.NewScanner(r)
	lineno, rangeLines := 0, 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if sect == sectionRanges && rangeLines > 0 {
				sect = sectionIDs
			}
			continue
		}
		switch sect {
		case sectionRanges:
			rangeLines++
			rng, err := idrange.ParseRange(line)
			if err != nil {
				errs = errors.Join(errs, fmt.Errorf("line %d: %w", lineno, err))
				continue
			}
			db.Ranges = append(db.Ranges, rng)
		case sectionIDs:
			id, err := strconv.ParseUint(line, 10, 64)
			if err != nil {
				errs = errors.Join(errs, fmt.Errorf("line %d: invalid id %q", lineno, line))
				continue
			}
			db.IDs = append(db.IDs, id)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read database: %w", err)
	}
	if errs != nil {
		return nil, errs
	}
	return db, nil
}

func ParseString(s string) (*Database, error) {
	return Parse(strings.NewReader(s))
}
