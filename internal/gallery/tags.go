package gallery

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// TagRow is one CSV row: an image filename and its gallery category tag.
type TagRow struct {
	Filename string
	Tag      string
}

// MissingTagsError reports every row whose tag column is empty, so the
// operator can fix the whole CSV in one pass instead of rerunning per row.
type MissingTagsError struct {
	Filenames []string
}

func (e *MissingTagsError) Error() string {
	var b strings.Builder
	b.WriteString("missing tags for these files:")
	for _, name := range e.Filenames {
		b.WriteString("\n - ")
		b.WriteString(name)
	}
	return b.String()
}

// LoadTags reads the tag CSV. The header row must contain both a "filename"
// and a "tag" column (any order, extra columns ignored). Fields are trimmed,
// rows with an empty filename are dropped, and row order is preserved. A CSV
// that yields zero usable rows is an error.
func LoadTags(path string) ([]TagRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, errors.New("CSV must have headers: filename, tag")
	}
	idxFilename, idxTag := -1, -1
	for i, col := range header {
		switch col {
		case "filename":
			idxFilename = i
		case "tag":
			idxTag = i
		}
	}
	if idxFilename < 0 || idxTag < 0 {
		return nil, errors.New("CSV must have headers: filename, tag")
	}

	var rows []TagRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV: %w", err)
		}
		filename := strings.TrimSpace(rec[idxFilename])
		tag := strings.TrimSpace(rec[idxTag])
		if filename == "" {
			continue
		}
		rows = append(rows, TagRow{Filename: filename, Tag: tag})
	}

	if len(rows) == 0 {
		return nil, errors.New("no rows found in CSV")
	}
	return rows, nil
}

// ValidateTags checks that every row carries a non-empty tag. All offenders
// are collected before failing; nothing should be written downstream of a
// validation error.
func ValidateTags(rows []TagRow) error {
	var missing []string
	for _, row := range rows {
		if row.Tag == "" {
			missing = append(missing, row.Filename)
		}
	}
	if len(missing) > 0 {
		return &MissingTagsError{Filenames: missing}
	}
	return nil
}
