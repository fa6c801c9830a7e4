package bulkimport

import (
	"strings"

	"github.com/seedinglab/seedops/seeding"
)

// ExistingRecord is the match target of one already-listed influencer.
type ExistingRecord struct {
	ID        int64
	AccountID string
}

// Row is one successfully parsed input line.
//
// A targeted row matched an existing record by account id and carries the
// remaining fields positionally (field 0 of Fields is the tracking number on
// shipping imports). A positional row carried a single value and is aligned
// to the Nth existing record by line index, matching "paste one column in
// the same row order as the table".
type Row struct {
	LineIndex  int
	TargetID   int64
	AccountID  string
	Positional bool
	Fields     []string
}

// Result ...
type Result struct {
	Valid   int
	Invalid int
	Parsed  []Row
}

// ParseLines parses pasted tabular text, one record per line. Fields are
// separated by a tab when the line contains one, else by comma. Malformed
// lines are counted as invalid and skipped, never an error: pasted input
// degrades, it does not crash the import dialog.
func ParseLines(text string, existing []ExistingRecord) Result {
	byAccount := make(map[string]ExistingRecord, len(existing))
	for _, rec := range existing {
		byAccount[seeding.NormalizeAccountID(rec.AccountID)] = rec
	}

	var result Result

	lineIndex := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		index := lineIndex
		lineIndex++

		fields := splitFields(line)
		if fields[0] == "" {
			result.Invalid++
			continue
		}

		if len(fields) >= 2 {
			rec, ok := byAccount[seeding.NormalizeAccountID(fields[0])]
			if !ok {
				result.Invalid++
				continue
			}
			result.Parsed = append(result.Parsed, Row{
				LineIndex: index,
				TargetID:  rec.ID,
				AccountID: seeding.NormalizeAccountID(rec.AccountID),
				Fields:    fields[1:],
			})
			result.Valid++
			continue
		}

		// single field: assign to the record at the same position
		if index >= len(existing) {
			result.Invalid++
			continue
		}
		result.Parsed = append(result.Parsed, Row{
			LineIndex:  index,
			TargetID:   existing[index].ID,
			Positional: true,
			Fields:     fields,
		})
		result.Valid++
	}

	return result
}

func splitFields(line string) []string {
	sep := ","
	if strings.Contains(line, "\t") {
		sep = "\t"
	}
	fields := strings.Split(line, sep)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
