package filestorage

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TimestampLayout prefixes stored certificate names (YYYYMMDDHHMMSS)
const TimestampLayout = "20060102150405"

// DefaultStem replaces a stem that sanitizes to nothing, e.g. 証明書.pdf
const DefaultStem = "certificate"

// MaxNameBytes caps a secure name so that <timestamp>_<name> fits in a
// 255-byte filesystem name with room to spare.
const MaxNameBytes = 200

// AllowedExtensions lists the certificate extensions accepted for upload
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

var windowsDeviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {},
}

// IsAllowedExtension reports whether the part after the last dot is an allowed extension.
// Names without a dot are rejected.
func IsAllowedExtension(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	_, ok := AllowedExtensions[strings.ToLower(filename[idx+1:])]
	return ok
}

// SecureFilename reduces a client-supplied name to a flat ASCII filename.
// Names with an allowed extension always keep it (lower-cased), and an empty
// stem becomes DefaultStem. Other names may come back empty.
func SecureFilename(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || !IsAllowedExtension(filename) {
		return truncate(guardDeviceName(sanitize(filename)), MaxNameBytes)
	}

	ext := strings.ToLower(filename[idx+1:])
	stem := truncate(sanitize(filename[:idx]), MaxNameBytes-len(ext)-1)
	if stem == "" {
		stem = DefaultStem
	}
	return guardDeviceName(stem) + "." + ext
}

func sanitize(filename string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(filename) {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}

	name := strings.ReplaceAll(b.String(), "/", " ")
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// truncate cuts name to max bytes; name is ASCII at this point
func truncate(name string, max int) string {
	if len(name) > max {
		name = strings.TrimRight(name[:max], "._")
	}
	return name
}

func guardDeviceName(name string) string {
	if name == "" {
		return name
	}
	if _, reserved := windowsDeviceNames[strings.ToUpper(strings.Split(name, ".")[0])]; reserved {
		return "_" + name
	}
	return name
}
