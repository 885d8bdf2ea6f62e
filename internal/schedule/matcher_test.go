package schedule

import (
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is 2024-03-04, a Monday.
func monday(hour, min, sec int) time.Time {
	return time.Date(2024, time.March, 4, hour, min, sec, 0, time.Local)
}

func file(name string, ts time.Time) Candidate {
	return Candidate{Path: "/in/" + name + ".pdf", Timestamp: ts, Ext: "pdf"}
}

func TestMatcher_SingleMatch(t *testing.T) {
	entries := []Entry{{Name: "Algebra", Start: 540, Days: NewDays(Monday)}}
	files := []Candidate{file("a", monday(9, 5, 0))}

	got := NewMatcher(10, PolicyFirst, slog.Default()).Match(entries, files)

	require.Len(t, got, 1)
	require.True(t, got[0].Assigned())
	assert.Equal(t, "Algebra", got[0].Destination())
	assert.Equal(t, 10.0, got[0].Assignment.Delta)
}

func TestMatcher_WrongDay(t *testing.T) {
	entries := []Entry{
		{Name: "Algebra", Start: 540, Days: NewDays(Tuesday, Friday)},
		{Name: "Biology", Start: 540, Days: NewDays(Sunday)},
	}
	files := []Candidate{file("a", monday(9, 0, 0))}

	got := NewMatcher(10, PolicyFirst, nil).Match(entries, files)
	assert.False(t, got[0].Assigned())
}

func TestMatcher_OutsideTolerance(t *testing.T) {
	entries := []Entry{{Name: "Algebra", Start: 540, Days: NewDays(Monday)}}
	files := []Candidate{
		file("late", monday(9, 30, 0)),
		file("edge", monday(9, 10, 0)),
		file("just-over", monday(9, 10, 1)),
	}

	got := NewMatcher(10, PolicyFirst, nil).Match(entries, files)
	assert.False(t, got[0].Assigned(), "30 minutes off")
	assert.True(t, got[1].Assigned(), "exactly at tolerance")
	assert.False(t, got[2].Assigned(), "one second over")
}

func TestMatcher_FirstPolicyKeepsEarlierEntry(t *testing.T) {
	entries := []Entry{
		{Name: "Algebra", Start: 540, Days: NewDays(Monday)},
		{Name: "Biology", Start: 546, Days: NewDays(Monday)},
	}
	// 09:05 is 5 minutes from Algebra and 1 minute from Biology.
	files := []Candidate{file("a", monday(9, 5, 0))}

	got := NewMatcher(10, PolicyFirst, nil).Match(entries, files)
	assert.Equal(t, "Algebra", got[0].Destination())
}

func TestMatcher_ClosestPolicy(t *testing.T) {
	entries := []Entry{
		{Name: "Algebra", Start: 540, Days: NewDays(Monday)},
		{Name: "Biology", Start: 546, Days: NewDays(Monday)},
	}
	files := []Candidate{file("a", monday(9, 5, 0))}

	got := NewMatcher(10, PolicyClosest, nil).Match(entries, files)
	require.True(t, got[0].Assigned())
	assert.Equal(t, "Biology", got[0].Destination())
	assert.InDelta(t, 1.0, got[0].Assignment.Delta, 1e-9)
}

func TestMatcher_ClosestPolicyTieKeepsEarlier(t *testing.T) {
	entries := []Entry{
		{Name: "Algebra", Start: 540, Days: NewDays(Monday)},
		{Name: "Biology", Start: 550, Days: NewDays(Monday)},
	}
	files := []Candidate{file("a", monday(9, 5, 0))}

	got := NewMatcher(10, PolicyClosest, nil).Match(entries, files)
	assert.Equal(t, "Algebra", got[0].Destination())
}

func TestMatcher_PreservesFileOrder(t *testing.T) {
	entries := []Entry{
		{Name: "Algebra", Start: 540, Days: NewDays(Monday)},
		{Name: "Chemistry", Start: 840, Days: NewDays(Monday)},
	}
	files := []Candidate{
		file("afternoon", monday(14, 2, 0)),
		file("nothing", monday(11, 0, 0)),
		file("morning", monday(8, 55, 0)),
	}

	got := NewMatcher(10, PolicyFirst, nil).Match(entries, files)
	require.Len(t, got, 3)
	assert.Equal(t, "/in/afternoon.pdf", got[0].Path)
	assert.Equal(t, "Chemistry", got[0].Destination())
	assert.False(t, got[1].Assigned())
	assert.Equal(t, "Algebra", got[2].Destination())
}

func TestMatcher_NoEntries(t *testing.T) {
	got := NewMatcher(10, PolicyFirst, nil).Match(nil, []Candidate{file("a", monday(9, 0, 0))})
	require.Len(t, got, 1)
	assert.False(t, got[0].Assigned())
}

func TestPolicy_Better(t *testing.T) {
	assert.True(t, PolicyFirst.Better(nil, Assignment{Delta: 10}))
	assert.True(t, PolicyFirst.Better(&Assignment{Delta: math.NaN()}, Assignment{Delta: 10}))
	assert.False(t, PolicyFirst.Better(&Assignment{Delta: 10}, Assignment{Delta: 10}))
	assert.True(t, PolicyClosest.Better(&Assignment{Delta: 5}, Assignment{Delta: 1}))
	assert.False(t, PolicyClosest.Better(&Assignment{Delta: 1}, Assignment{Delta: 5}))
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyFirst, p)

	p, err = ParsePolicy("Closest")
	require.NoError(t, err)
	assert.Equal(t, PolicyClosest, p)
	assert.Equal(t, "closest", p.String())

	_, err = ParsePolicy("nearest")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}
