package valueobjects

import "fmt"

type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in-progress"
	StatusResolved   ComplaintStatus = "resolved"
)

var validComplaintStatuses = map[ComplaintStatus]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
}

// complaintStatusRanks orders statuses for the student "sort by status"
// view: pending first, resolved last.
var complaintStatusRanks = map[ComplaintStatus]int{
	StatusPending:    3,
	StatusInProgress: 2,
	StatusResolved:   1,
}

func (s ComplaintStatus) String() string {
	return string(s)
}

func (s ComplaintStatus) IsValid() bool {
	return validComplaintStatuses[s]
}

// CanTransitionTo reports whether a transition to newStatus is allowed.
// Every transition between valid statuses is permitted, including reopening
// a resolved complaint: resolution can be disputed, so there is no terminal
// state.
func (s ComplaintStatus) CanTransitionTo(newStatus ComplaintStatus) bool {
	return s.IsValid() && newStatus.IsValid()
}

// Rank returns the fixed sort rank (pending=3 > in-progress=2 > resolved=1).
func (s ComplaintStatus) Rank() int {
	return complaintStatusRanks[s]
}

// DisplayName returns the human-readable form ("in-progress" -> "in progress").
func (s ComplaintStatus) DisplayName() string {
	if s == StatusInProgress {
		return "in progress"
	}
	return string(s)
}

func (s ComplaintStatus) IsPending() bool {
	return s == StatusPending
}

func (s ComplaintStatus) IsInProgress() bool {
	return s == StatusInProgress
}

func (s ComplaintStatus) IsResolved() bool {
	return s == StatusResolved
}

func NewComplaintStatus(s string) (ComplaintStatus, error) {
	cs := ComplaintStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid complaint status: %s", s)
	}
	return cs, nil
}
