package savename

import (
	"strings"
	"unicode/utf8"
)

// internalMark delimits the management tag on both sides.
const internalMark = "__"

// Parse decomposes a save file name into its structured fields. The four
// segments are matched left to right: optional internal marker, mandatory
// "user" prefix with the slot tag, optional version, mandatory suffix. The
// whole name must be consumed; trailing characters after the suffix are a
// failure, never silently dropped.
func Parse(name string) (ParsedName, error) {
	internalTag, rest, err := parseInternalTag(name)
	if err != nil {
		return ParsedName{}, err
	}

	tag, rest, err := parseUserTag(rest)
	if err != nil {
		return ParsedName{}, err
	}

	version, rest, _ := parseVersion(rest)

	backupID, backup, err := parseSuffix(rest)
	if err != nil {
		return ParsedName{}, err
	}

	return ParsedName{
		Tag:         tag,
		Version:     version,
		BackupID:    backupID,
		Backup:      backup,
		InternalTag: internalTag,
	}, nil
}

// parseInternalTag matches the leading __<text>__ management marker. A name
// without the opening marker has no internal tag, which is not an error. An
// opening marker that is never closed, or closed with nothing in between,
// is a structural failure.
func parseInternalTag(input string) (tag, rest string, err error) {
	body, ok := scanLiteral(input, internalMark)
	if !ok {
		return "", input, nil
	}
	tag, rest, ok = scanUntil(body, internalMark)
	if !ok {
		return "", input, &ParseError{Expected: `closing "__" after internal tag`, Remainder: body}
	}
	if tag == "" {
		return "", input, &ParseError{Expected: "internal tag text", Remainder: body}
	}
	rest, _ = scanLiteral(rest, internalMark)
	return tag, rest, nil
}

// parseUserTag matches the literal "user" prefix and the slot tag after it.
// The tag is an unbounded token: it may contain dots, underscores, dashes,
// digits, anything. Its end is found by growing it one rune at a time and
// probing the remaining input with tailMatches; the first position (from the
// left) where the probe succeeds ends the tag, and the split is never
// revisited. A probe success after zero runes would mean an empty tag, which
// the scheme does not allow.
func parseUserTag(input string) (tag, rest string, err error) {
	body, ok := scanLiteral(input, "user")
	if !ok {
		return "", "", &ParseError{Expected: `"user" prefix`, Remainder: input}
	}

	i := 0
	for {
		if tailMatches(body[i:]) {
			if i == 0 {
				return "", "", &ParseError{Expected: "slot tag", Remainder: body}
			}
			return body[:i], body[i:], nil
		}
		if i >= len(body) {
			return "", "", &ParseError{Expected: `version or ".dat" suffix`, Remainder: body}
		}
		_, w := utf8.DecodeRuneInString(body[i:])
		i += w
	}
}

// tailMatches reports whether input is exactly an optional version segment
// followed by a valid suffix. It consumes nothing: a failed probe only means
// the slot tag keeps growing.
func tailMatches(input string) bool {
	_, rest, _ := parseVersion(input)
	_, _, err := parseSuffix(rest)
	return err == nil
}

// parseVersion matches _<digits>[.<digits>]... — an underscore introducing
// one or more dot-separated digit groups (three components for current
// saves, four for legacy ones; any count is accepted). A missing underscore,
// or an underscore not followed by a digit, means the name simply has no
// version segment: present is false and the input is returned untouched.
// A dot not followed by a digit ends the segment without being consumed.
func parseVersion(input string) (version, rest string, present bool) {
	body, ok := scanLiteral(input, "_")
	if !ok {
		return "", input, false
	}
	digits, rest := scanDigits(body)
	if digits == "" {
		return "", input, false
	}
	for strings.HasPrefix(rest, ".") {
		more, after := scanDigits(rest[1:])
		if more == "" {
			break
		}
		rest = after
	}
	return body[:len(body)-len(rest)], rest, true
}

// parseSuffix matches the mandatory ".dat" extension, an optional ".bak"
// backup marker with its digit id, and then end of input. The id may be
// empty: "user2.dat.bak" is a backup with no explicit id, which is distinct
// from "user2.dat" not being a backup at all.
func parseSuffix(input string) (backupID string, backup bool, err error) {
	rest, ok := scanLiteral(input, ".dat")
	if !ok {
		return "", false, &ParseError{Expected: `".dat" suffix`, Remainder: input}
	}
	if body, ok := scanLiteral(rest, ".bak"); ok {
		id, after := scanDigits(body)
		if after != "" {
			return "", false, &ParseError{Expected: "end of name after backup id", Remainder: after}
		}
		return id, true, nil
	}
	if rest != "" {
		return "", false, &ParseError{Expected: `end of name after ".dat"`, Remainder: rest}
	}
	return "", false, nil
}
