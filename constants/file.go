package constants

import "strings"

// Format identifies which loading strategy handles a file.
type Format string

const (
	PDF         Format = "PDF"
	IMAGE       Format = "IMAGE"
	WORD        Format = "WORD"
	CSV         Format = "CSV"
	SPREADSHEET Format = "SPREADSHEET"
	GENERIC     Format = "GENERIC"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to its loading format.
// Unknown extensions map to GENERIC; there is no "unsupported" answer.
func MapExtToFormat(ext string) Format {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "png", "jpg", "jpeg":
		return IMAGE
	case "docx", "doc":
		return WORD
	case "csv":
		return CSV
	case "xlsx", "xls":
		return SPREADSHEET
	default:
		return GENERIC
	}
}
