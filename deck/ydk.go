// Package deck parses uploaded deck-list files into card id lists.
package deck

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"decklab/models"
)

// Section markers used by the ydk format. Any other line starting with
// '#' is a comment.
const (
	markerMain  = "#main"
	markerExtra = "#extra"
	markerSide  = "!side"
)

// Parse reads a ydk deck list into its three id lists. Card ids appear
// one per line under the "#main", "#extra" and "!side" markers; comment
// and blank lines are skipped, and ids before the first marker are
// ignored. A non-numeric id line is a parse error naming the line.
func Parse(r io.Reader) (*models.DeckList, error) {
	list := &models.DeckList{}

	var current *[]int64

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case markerMain:
			current = &list.Main
			continue
		case markerExtra:
			current = &list.Extra
			continue
		case markerSide:
			current = &list.Side
			continue
		}

		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			// Comment or unrecognized marker.
			continue
		}

		if current == nil {
			continue
		}

		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid card id %q", lineNo, line)
		}
		*current = append(*current, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deck list: %w", err)
	}

	return list, nil
}

// Validate checks the copy-count limit across the whole list. Deeper
// legality (banlists, deck size rules) is out of scope here.
func Validate(list *models.DeckList) error {
	for id, count := range list.CopyCounts() {
		if count > models.MaxCopiesPerCard {
			return fmt.Errorf("card %d appears %d times, limit is %d", id, count, models.MaxCopiesPerCard)
		}
	}
	return nil
}
