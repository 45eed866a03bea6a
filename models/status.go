package models

// ReportStatus enum
type ReportStatus string

const (
	StatusPending    ReportStatus = "pending"
	StatusAssigned   ReportStatus = "assigned"
	StatusInProgress ReportStatus = "in_progress"
	StatusResolved   ReportStatus = "resolved"
)

// ActiveReportStatuses are the statuses a report holds while still open.
var ActiveReportStatuses = []ReportStatus{StatusPending, StatusAssigned, StatusInProgress}

// AssignedWorkStatuses are the statuses that count against a staff member's load.
var AssignedWorkStatuses = []ReportStatus{StatusAssigned, StatusInProgress}

var statusTransitions = map[ReportStatus][]ReportStatus{
	StatusPending:    {StatusAssigned, StatusResolved},
	StatusAssigned:   {StatusInProgress, StatusResolved},
	StatusInProgress: {StatusResolved},
	StatusResolved:   {},
}

// CanTransition reports whether a report may move from one status to another.
// Resolved is terminal. Unknown statuses never transition.
func CanTransition(from, to ReportStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsOpen reports whether the report still awaits resolution.
func (s ReportStatus) IsOpen() bool {
	for _, open := range ActiveReportStatuses {
		if s == open {
			return true
		}
	}
	return false
}

func (s ReportStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

var categoryPoints = map[ReportCategory]int{
	CategoryEmergency:       20,
	CategorySafety:          15,
	CategoryIllegalActivity: 12,
	CategoryRoad:            10,
	CategoryWater:           10,
	CategoryElectricity:     10,
	CategorySanitation:      8,
}

const defaultResolvePoints = 5

// ResolvePoints is the reward recorded on a report when it is resolved.
func ResolvePoints(category ReportCategory) int {
	if p, ok := categoryPoints[category]; ok {
		return p
	}
	return defaultResolvePoints
}

func (c ReportCategory) Valid() bool {
	_, ok := categoryPoints[c]
	return ok
}
