package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	// Drafts up to this many runes get an exact Levenshtein distance.
	exactDistanceRunes = 2048
	// Longer drafts are diffed with this time budget and the distance is
	// read off the diff, which may overestimate it.
	diffBudget = 250 * time.Millisecond
)

func editDistance(ctx context.Context, from, to string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if utf8.RuneCountInString(from) <= exactDistanceRunes && utf8.RuneCountInString(to) <= exactDistanceRunes {
		return levenshtein.ComputeDistance(from, to), nil
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = diffBudget
	if deadline, ok := ctx.Deadline(); ok {
		dmp.DiffTimeout = max(min(diffBudget, time.Until(deadline)), time.Millisecond)
	}
	return dmp.DiffLevenshtein(dmp.DiffMain(from, to, false)), nil
}
