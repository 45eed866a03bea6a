package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from, to ReportStatus
		allowed  bool
	}{
		{StatusPending, StatusAssigned, true},
		{StatusPending, StatusResolved, true},
		{StatusPending, StatusInProgress, false},
		{StatusAssigned, StatusInProgress, true},
		{StatusAssigned, StatusResolved, true},
		{StatusAssigned, StatusPending, false},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusAssigned, false},
		{StatusResolved, StatusPending, false},
		{StatusResolved, StatusResolved, false},
		{"closed", StatusResolved, false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestResolvePoints(t *testing.T) {
	assert.Equal(t, 20, ResolvePoints(CategoryEmergency))
	assert.Equal(t, 15, ResolvePoints(CategorySafety))
	assert.Equal(t, 12, ResolvePoints(CategoryIllegalActivity))
	assert.Equal(t, 10, ResolvePoints(CategoryRoad))
	assert.Equal(t, 8, ResolvePoints(CategorySanitation))
	assert.Equal(t, 5, ResolvePoints("noise"))
}

func TestBoundaryBox(t *testing.T) {
	box := DefaultBoundaryBox(Coordinates{Lat: 27.7, Lng: 85.3})

	assert.InDelta(t, 27.6, box.MinLat, 1e-9)
	assert.InDelta(t, 85.4, box.MaxLng, 1e-9)
	assert.True(t, box.Contains(27.7, 85.3))
	assert.True(t, box.Contains(box.MinLat, box.MaxLng), "edges are inside")
	assert.False(t, box.Contains(27.81, 85.3))
	assert.True(t, box.Valid())

	var unrestricted *BoundaryBox
	assert.True(t, unrestricted.Contains(-45, 170))
	assert.True(t, unrestricted.Valid())

	assert.False(t, (&BoundaryBox{MinLat: 1, MaxLat: 0}).Valid())
}

func TestStaffCompletionRate(t *testing.T) {
	assert.Equal(t, 0, (&Staff{}).CompletionRate())
	assert.Equal(t, 67, (&Staff{TotalTasksAssigned: 3, TasksCompleted: 2}).CompletionRate())
}

func TestPageQueryNormalize(t *testing.T) {
	q := PageQuery{Page: 0, Limit: 500}.Normalize(DefaultPageLimit)
	assert.Equal(t, PageQuery{Page: 1, Limit: MaxPageLimit}, q)

	q = PageQuery{Page: 3}.Normalize(20)
	assert.Equal(t, int64(40), q.Skip())
	assert.Equal(t, &Pagination{Page: 3, Limit: 20, Total: 41, Pages: 3}, NewPagination(q, 41))
}
