package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	d := func(s string) time.Time {
		t.Helper()
		v, ok := ParseDate(s)
		require.True(t, ok, s)
		return v
	}

	require.Equal(t, 1, DaysBetween(d("2024-05-01"), d("2024-05-01")))
	require.Equal(t, 3, DaysBetween(d("2024-05-01"), d("2024-05-03")))
	require.Equal(t, 1, DaysBetween(d("2024-05-03"), d("2024-05-01")), "end before start floors at 1")
	require.Equal(t, 366, DaysBetween(d("2024-01-01"), d("2024-12-31")))
}

func TestDaysBetween_RangesLongerThanDuration(t *testing.T) {
	require.Equal(t, 146098, DaysBetweenKeys("1700-01-01", "2100-01-01"))
	require.Equal(t, 3652059, DaysBetweenKeys("0001-01-01", "9999-12-31"))

	daily := Count(Recurrence{Start: "1700-01-01", End: "2100-01-01", Frequency: FrequencyDaily})
	require.Equal(t, DaysBetweenKeys("1700-01-01", "2100-01-01"), daily)
}

func TestDaysBetween_IgnoresTimeOfDayAndDST(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	// cruza el cambio de horario del 2024-04-07
	start := time.Date(2024, 4, 6, 23, 30, 0, 0, loc)
	end := time.Date(2024, 4, 8, 0, 15, 0, 0, loc)
	require.Equal(t, 3, DaysBetween(start, end))
}

func TestDaysBetweenKeys_MissingDate(t *testing.T) {
	require.Equal(t, 0, DaysBetweenKeys("", "2024-05-01"))
	require.Equal(t, 0, DaysBetweenKeys("2024-05-01", ""))
	require.Equal(t, 2, DaysBetweenKeys("2024-05-01", "2024-05-02"))
}

func TestToDateKey_SameDaySameKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	morning := time.Date(2024, 5, 2, 0, 5, 0, 0, loc)
	night := time.Date(2024, 5, 2, 23, 55, 0, 0, loc)
	require.Equal(t, "2024-05-02", ToDateKey(morning))
	require.Equal(t, ToDateKey(morning), ToDateKey(night))
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"2024-06-01":                "2024-06-01",
		" 2024/6/3 ":                "2024-06-03",
		"2024-6-9":                  "2024-06-09",
		"2024-06-01T22:00:00+10:00": "2024-06-01",
	}
	for in, want := range cases {
		got, ok := NormalizeKey(in)
		require.True(t, ok, in)
		require.Equal(t, want, got, in)
	}

	_, ok := NormalizeKey("tomorrow")
	require.False(t, ok)
}

func TestParseCustomDates(t *testing.T) {
	got := ParseCustomDates("2024-06-03, 2024-06-01，2024-06-03,, ，2024-06-02 ")
	require.Equal(t, []string{"2024-06-03", "2024-06-01", "2024-06-02"}, got)
	require.Empty(t, ParseCustomDates(""))
}

func TestResolveDates_Alternate(t *testing.T) {
	got := ResolveDates(Recurrence{Start: "2024-05-01", End: "2024-05-05", Frequency: FrequencyAlternate})
	require.Equal(t, []string{"2024-05-01", "2024-05-03", "2024-05-05"}, got)
	require.Equal(t, 3, Count(Recurrence{Start: "2024-05-01", End: "2024-05-05", Frequency: FrequencyAlternate}))
}

func TestResolveDates_CrossesMonthBoundary(t *testing.T) {
	got := ResolveDates(Recurrence{Start: "2024-02-28", End: "2024-03-02", Frequency: FrequencyDaily})
	require.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}, got)
}

func TestResolveDates_Custom(t *testing.T) {
	r := Recurrence{
		Start:       "2024-06-01",
		End:         "2024-06-30",
		Frequency:   FrequencyCustom,
		CustomDates: "2024-06-01, 2024-06-01，2024-06-03",
	}
	require.Equal(t, []string{"2024-06-01", "2024-06-03"}, ResolveDates(r))
	require.Equal(t, 2, Count(r))
}

func TestResolveDates_CustomNormalizesBeforeDedup(t *testing.T) {
	r := Recurrence{Frequency: FrequencyCustom, CustomDates: "2024-06-01,2024/6/1,nope,2024-06-02"}
	require.Equal(t, []string{"2024-06-01", "2024-06-02"}, ResolveDates(r))
}

func TestResolveDates_EndBeforeStartIsEmpty(t *testing.T) {
	r := Recurrence{Start: "2024-05-05", End: "2024-05-01", Frequency: FrequencyDaily}
	require.Empty(t, ResolveDates(r))
	require.Equal(t, 0, Count(r))
}

func TestResolveDates_MissingBoundsIsEmpty(t *testing.T) {
	require.Empty(t, ResolveDates(Recurrence{End: "2024-05-01", Frequency: FrequencyDaily}))
	require.Equal(t, 0, Count(Recurrence{Start: "2024-05-01", Frequency: FrequencyDaily}))
	// custom con rango incompleto: Count corta antes de resolver
	require.Equal(t, 0, Count(Recurrence{Start: "2024-05-01", Frequency: FrequencyCustom, CustomDates: "2024-05-02"}))
}

func TestResolveDates_Restartable(t *testing.T) {
	r := Recurrence{Start: "2024-05-01", End: "2024-05-09", Frequency: FrequencyAlternate}
	require.Equal(t, ResolveDates(r), ResolveDates(r))
}

func TestCount_Properties(t *testing.T) {
	ranges := [][2]string{
		{"2024-05-01", "2024-05-01"},
		{"2024-05-01", "2024-05-02"},
		{"2024-05-01", "2024-05-31"},
		{"2024-02-10", "2024-03-20"},
		{"2023-12-30", "2024-01-04"},
	}
	for _, rg := range ranges {
		length := DaysBetweenKeys(rg[0], rg[1])

		daily := Count(Recurrence{Start: rg[0], End: rg[1], Frequency: FrequencyDaily})
		require.Equal(t, length, daily, "daily %v", rg)

		alternate := Count(Recurrence{Start: rg[0], End: rg[1], Frequency: FrequencyAlternate})
		require.Equal(t, (length+1)/2, alternate, "alternate %v", rg)
	}
}

func TestParseFrequency(t *testing.T) {
	f, err := ParseFrequency(" Alternate ")
	require.NoError(t, err)
	require.Equal(t, FrequencyAlternate, f)
	require.Equal(t, "隔一天", f.Label())

	_, err = ParseFrequency("weekly")
	require.ErrorIs(t, err, ErrUnknownFrequency)
}

func TestInMonthAndDaysInMonth(t *testing.T) {
	require.True(t, InMonth("2024-05-31", 2024, time.May))
	require.False(t, InMonth("2024-06-01", 2024, time.May))
	require.False(t, InMonth("", 2024, time.May))
	require.Equal(t, 29, DaysInMonth(2024, time.February))
	require.Equal(t, 31, DaysInMonth(2024, time.December))
}
