package analyze

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarshrpatel/document-analyzer-agent/internal/common"
)

// stubService is a scripted llm.GenerativeTextService.
type stubService struct {
	out     string
	err     error
	prompts []string
}

func (s *stubService) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.out, s.err
}

func TestExtractInfo(t *testing.T) {
	svc := &stubService{out: `{"invoice_number":"4471","date":"2024-03-01"}`}
	a := NewAnalyzer(svc, nil)

	got, err := a.ExtractInfo(context.Background(), "Invoice Number: 4471, Date: 2024-03-01", "{invoice_number}_{date}")
	require.NoError(t, err)
	assert.Equal(t, `{"invoice_number":"4471","date":"2024-03-01"}`, got)

	require.Len(t, svc.prompts, 1)
	assert.Contains(t, svc.prompts[0], "Invoice Number: 4471, Date: 2024-03-01")
	assert.Contains(t, svc.prompts[0], "{invoice_number}_{date}")
	assert.Contains(t, svc.prompts[0], "Return ONLY the JSON object")
}

func TestExtractInfoStripsCodeFence(t *testing.T) {
	svc := &stubService{out: "```json\n{\"date\":\"2024-03-01\"}\n```"}
	a := NewAnalyzer(svc, nil)

	got, err := a.ExtractInfo(context.Background(), "text", "convention")
	require.NoError(t, err)
	assert.Equal(t, `{"date":"2024-03-01"}`, got)
}

func TestExtractInfoServiceError(t *testing.T) {
	svc := &stubService{err: errors.New("boom")}
	a := NewAnalyzer(svc, nil)

	_, err := a.ExtractInfo(context.Background(), "text", "convention")
	require.Error(t, err)
	assert.True(t, common.IsExtractionFailure(err))
}

func TestExtractInfoRejectsMalformedOutput(t *testing.T) {
	cases := []struct {
		name string
		out  string
	}{
		{"prose", "The invoice number is 4471."},
		{"array", `["4471","2024-03-01"]`},
		{"nested object value", `{"fields":{"invoice":"4471"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAnalyzer(&stubService{out: tc.out}, nil)
			_, err := a.ExtractInfo(context.Background(), "text", "convention")
			require.Error(t, err)
			assert.True(t, common.IsExtractionFailure(err))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Invoice: 2024/03*Final", "Invoice_ 2024_03_Final"},
		{"  4471_2024-03-01  ", "4471_2024-03-01"},
		{"line\nbreak\rgone", "linebreakgone"},
		{`a<b>c:d"e/f\g|h?i*j`, "a_b_c_d_e_f_g_h_i_j"},
		{"   \n ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeFilename(tc.in))
		})
	}
}

func TestGenerateFilename(t *testing.T) {
	svc := &stubService{out: "4471_2024-03-01\n"}
	a := NewAnalyzer(svc, nil)

	got, err := a.GenerateFilename(context.Background(), `{"invoice_number":"4471"}`, "{invoice_number}_{date}", ".pdf")
	require.NoError(t, err)
	assert.Equal(t, "4471_2024-03-01.pdf", got)

	require.Len(t, svc.prompts, 1)
	assert.Contains(t, svc.prompts[0], `{"invoice_number":"4471"}`)
	assert.Contains(t, svc.prompts[0], "Do not include a file extension")
}

func TestGenerateFilenameWhitespaceOnly(t *testing.T) {
	svc := &stubService{out: "   \n  "}
	a := NewAnalyzer(svc, nil)

	_, err := a.GenerateFilename(context.Background(), "{}", "convention", ".pdf")
	require.Error(t, err)
	assert.True(t, common.IsNamingFailure(err))
}

func TestGenerateFilenameServiceError(t *testing.T) {
	svc := &stubService{err: errors.New("boom")}
	a := NewAnalyzer(svc, nil)

	_, err := a.GenerateFilename(context.Background(), "{}", "convention", ".pdf")
	require.Error(t, err)
	assert.True(t, common.IsNamingFailure(err))
}
