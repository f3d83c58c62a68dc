package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapExtToFormat(t *testing.T) {
	cases := map[string]Format{
		".pdf":  PDF,
		"PDF":   PDF,
		".png":  IMAGE,
		".jpg":  IMAGE,
		".jpeg": IMAGE,
		".docx": WORD,
		".doc":  WORD,
		".csv":  CSV,
		".xlsx": SPREADSHEET,
		".xls":  SPREADSHEET,
		".txt":  GENERIC,
		".mkv":  GENERIC,
		"":      GENERIC,
	}
	for ext, want := range cases {
		assert.Equal(t, want, MapExtToFormat(ext), "ext %q", ext)
	}
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "jpeg", NormalizeExt("JPEG"))
	assert.Equal(t, "", NormalizeExt("."))
}
