package results

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/colorfulnotion/hashchart/charterrors"
	"github.com/colorfulnotion/hashchart/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithHeader(t *testing.T) {
	in := "lines md5 sha1\n100 0.01 0.02\n\n200\t0.02   0.04\n"
	tbl, err := Parse(strings.NewReader(in), ParseOptions{Format: WithHeaderMultiSeries})
	require.NoError(t, err)

	assert.Equal(t, "lines", tbl.XLabel)
	assert.Equal(t, []string{"md5", "sha1"}, tbl.Series)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, int64(200), tbl.Rows[1].LineCount)
	assert.Equal(t, 4, tbl.Rows[1].Line)
	assert.Equal(t, []Point{{100, 0.02}, {200, 0.04}}, tbl.Points(1))
}

func TestParseHeaderless(t *testing.T) {
	in := "100 0.5\n200 1.0\n"
	tbl, err := Parse(strings.NewReader(in), ParseOptions{Format: HeaderlessSingleSeries})
	require.NoError(t, err)

	assert.Equal(t, HeaderlessXLabel, tbl.XLabel)
	assert.Equal(t, []string{HeaderlessSeriesLabel}, tbl.Series)
	assert.Equal(t, []Point{{100, 0.5}, {200, 1.0}}, tbl.Points(0))
}

func TestParseKeepsFileOrder(t *testing.T) {
	in := "200 2\n100 1\n200 3\n"
	tbl, err := Parse(strings.NewReader(in), ParseOptions{Format: HeaderlessSingleSeries})
	require.NoError(t, err)
	assert.Equal(t, []Point{{200, 2}, {100, 1}, {200, 3}}, tbl.Points(0))
}

func TestParseMalformedRow(t *testing.T) {
	cases := map[string]string{
		"short row":      "lines md5 sha1\n100 0.01 0.02\n200 0.02\n",
		"long row":       "lines md5 sha1\n100 0.01 0.02\n200 0.02 0.04 0.08\n",
		"float x":        "lines md5 sha1\n100 0.01 0.02\n2.5 0.02 0.04\n",
		"text value":     "lines md5 sha1\n100 0.01 0.02\n200 fast 0.04\n",
		"non finite val": "lines md5 sha1\n100 0.01 0.02\n200 NaN 0.04\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(in), ParseOptions{Format: WithHeaderMultiSeries})
			require.Error(t, err)
			assert.True(t, errors.Is(err, charterrors.ErrMalformedRow))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, 3, perr.Line)
		})
	}
}

func TestParseSkipMalformed(t *testing.T) {
	in := "lines md5\n100 0.01\n200 oops\n300 0.03 0.1\n400 0.04\n"
	tbl, err := Parse(strings.NewReader(in), ParseOptions{Format: WithHeaderMultiSeries, SkipMalformed: true})
	require.NoError(t, err)

	assert.Len(t, tbl.Rows, 2)
	require.Len(t, tbl.Skipped, 2)
	assert.Equal(t, 3, tbl.Skipped[0].Line)
	assert.Equal(t, 4, tbl.Skipped[1].Line)
}

func TestParseBadHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("lines\n100\n"), ParseOptions{Format: WithHeaderMultiSeries, SkipMalformed: true})
	require.ErrorIs(t, err, charterrors.ErrBadHeader)

	_, err = Parse(strings.NewReader("\n\n"), ParseOptions{Format: WithHeaderMultiSeries})
	require.ErrorIs(t, err, charterrors.ErrEmptyTable)

	_, err = Parse(strings.NewReader("1 2\n"), ParseOptions{Format: Format(9)})
	require.ErrorIs(t, err, charterrors.ErrUnknownVariant)
}

func TestParseEmptyData(t *testing.T) {
	tbl, err := Parse(strings.NewReader("lines md5 sha1\n\n"), ParseOptions{Format: WithHeaderMultiSeries})
	require.NoError(t, err)
	assert.Equal(t, []string{"md5", "sha1"}, tbl.Series)
	assert.Empty(t, tbl.Rows)

	_, err = Parse(strings.NewReader(""), ParseOptions{Format: HeaderlessSingleSeries})
	require.ErrorIs(t, err, charterrors.ErrEmptyTable)

	_, err = Parse(strings.NewReader("100 0.5 9\n"), ParseOptions{Format: HeaderlessSingleSeries, SkipMalformed: true})
	require.ErrorIs(t, err, charterrors.ErrEmptyTable)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), ParseOptions{})
	require.ErrorIs(t, err, charterrors.ErrMissingInput)
}

func TestWriteRoundTrip(t *testing.T) {
	tbl := NewTable("Lines", "sha256", "blake2b")
	require.NoError(t, tbl.Append(1, 0.000001, 0.000002))
	require.NoError(t, tbl.Append(789, 0.25, 0.125))
	require.ErrorIs(t, tbl.Append(2, 1), charterrors.ErrMalformedRow)

	path := filepath.Join(t.TempDir(), "results", "konstitucija.txt")
	require.NoError(t, Save(path, tbl, WithHeaderMultiSeries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Lines sha256 blake2b\n1 0.00000100000000000 "))

	back, err := Load(path, ParseOptions{Format: WithHeaderMultiSeries})
	require.NoError(t, err)
	assert.Equal(t, tbl.Series, back.Series)
	assert.Equal(t, tbl.Points(1), back.Points(1))
}

func TestWriteHeaderless(t *testing.T) {
	tbl := NewTable("Lines", "sha256", "blake2b")
	var buf bytes.Buffer
	require.ErrorIs(t, Write(&buf, tbl, HeaderlessSingleSeries), charterrors.ErrBadHeader)

	single := NewTable(HeaderlessXLabel, "sha256")
	require.NoError(t, single.Append(4, 0.5))
	require.NoError(t, Write(&buf, single, HeaderlessSingleSeries))
	assert.Equal(t, "4 0.50000000000000000\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("Headerless")
	require.NoError(t, err)
	assert.Equal(t, HeaderlessSingleSeries, f)

	f, err = ParseFormat("a")
	require.NoError(t, err)
	assert.Equal(t, WithHeaderMultiSeries, f)

	_, err = ParseFormat("csv")
	require.ErrorIs(t, err, charterrors.ErrUnknownVariant)
}

func TestDescribe(t *testing.T) {
	in := "lines md5\n100 0.01\n200 0.03\nbad row here\n"
	tbl, err := Parse(strings.NewReader(in), ParseOptions{Format: WithHeaderMultiSeries, SkipMalformed: true})
	require.NoError(t, err)

	out := Describe("konstitucija.txt", tbl, false)
	assert.Contains(t, out, "konstitucija.txt")
	assert.Contains(t, out, "md5: 2 points")
	assert.Contains(t, out, "skipped (1)")
	assert.Contains(t, out, "line 4: expected 2 columns, got 3")

	colored := Describe("konstitucija.txt", tbl, true)
	assert.Contains(t, colored, common.ColorRed+"line 4")
	assert.Contains(t, colored, common.ColorGray+"x: lines")
}
