package download

import (
	"regexp"
	"strings"

	"github.com/handiism/gamevault/internal/model"
)

var (
	invalidChars  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots  = regexp.MustCompile(`\.+$`)
	repeatedSpace = regexp.MustCompile(`\s+`)
)

// FileName returns the archive name a download of item is saved as.
func FileName(item model.Item) string {
	name := SanitizeFileName(item.Title)
	if name == "" {
		name = item.ID
	}
	return name + ".zip"
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Leading and trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Dragon: Part 1/2")    // Returns "Dragon_ Part 1_2"
//	SanitizeFileName("Quest...")            // Returns "Quest"
//	SanitizeFileName("Name   with  spaces") // Returns "Name with spaces"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
