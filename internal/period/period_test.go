package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		year, month int
		want        Period
	}{
		{2022, 1, "2022-01"},
		{2022, 12, "2022-12"},
		{999, 3, "0999-03"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.year, tt.month))
	}
}

func TestFromDate(t *testing.T) {
	d := time.Date(2023, time.February, 28, 13, 0, 0, 0, time.UTC)
	assert.Equal(t, Period("2023-02"), FromDate(d))
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Period
	}{
		{"2022-01", "2022-01"},
		{"2022-1", "2022-01"},
		{" 2021-11 ", "2021-11"},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		require.NoError(t, err, "Parse(%q)", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "2022", "2022-13", "2022-00", "abcd-01", "2022-xx"} {
		_, err := Parse(input)
		assert.Error(t, err, "Parse(%q) should fail", input)
	}
}

func TestSplit(t *testing.T) {
	y, m := Period("2022-07").Split()
	assert.Equal(t, 2022, y)
	assert.Equal(t, 7, m)
	assert.Equal(t, 2022, Period("2022-07").Year())
	assert.Equal(t, 7, Period("2022-07").Month())

	y, m = Period("garbage").Split()
	assert.Zero(t, y)
	assert.Zero(t, m)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		p    Period
		n    int
		want Period
	}{
		{"2022-01", 1, "2022-02"},
		{"2022-12", 1, "2023-01"},
		{"2022-01", -1, "2021-12"},
		{"2022-04", -11, "2021-05"},
		{"2022-04", 0, "2022-04"},
		{"2022-04", 24, "2024-04"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.AddMonths(tt.n), "%s%+d", tt.p, tt.n)
	}
}

func TestSort(t *testing.T) {
	ps := []Period{"2022-10", "2021-12", "2022-02"}
	Sort(ps)
	assert.Equal(t, []Period{"2021-12", "2022-02", "2022-10"}, ps)
}

func TestFilterMatch(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		p      Period
		want   bool
	}{
		{"zero matches all", Filter{}, "2022-04", true},
		{"year only", Filter{Year: 2022}, "2022-04", true},
		{"year only other year", Filter{Year: 2022}, "2021-04", false},
		{"month only", Filter{Month: 4}, "2019-04", true},
		{"month and year", Filter{Year: 2022, Month: 4}, "2022-04", true},
		{"month and year miss", Filter{Year: 2022, Month: 4}, "2022-05", false},
		{"ltm end", Filter{Year: 2022, Month: 4, LTM: true}, "2022-04", true},
		{"ltm start", Filter{Year: 2022, Month: 4, LTM: true}, "2021-05", true},
		{"ltm before start", Filter{Year: 2022, Month: 4, LTM: true}, "2021-04", false},
		{"ltm after end", Filter{Year: 2022, Month: 4, LTM: true}, "2022-05", false},
		{"unresolved ltm", Filter{LTM: true}, "2022-05", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(tt.p))
		})
	}
}

func TestFilterResolve(t *testing.T) {
	f := Filter{LTM: true}.Resolve("2022-06")
	assert.Equal(t, Filter{Year: 2022, Month: 6, LTM: true}, f)

	f = Filter{Year: 2021, LTM: true}.Resolve("2022-06")
	assert.Equal(t, Filter{Year: 2021, Month: 12, LTM: true}, f)

	// Non-LTM filters are left alone.
	f = Filter{Year: 2021}.Resolve("2022-06")
	assert.Equal(t, Filter{Year: 2021}, f)

	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{LTM: true}.IsZero())
}
