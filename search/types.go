package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for problem construction and search execution.
var (
	// ErrEmptyOperatorName is returned when an operator is created without a name.
	ErrEmptyOperatorName = errors.New("search: operator name is empty")

	// ErrNilActions is returned when a Problem has no applicable-operators function.
	ErrNilActions = errors.New("search: applicable operators function is nil")

	// ErrNilResult is returned when a Problem has no transition model.
	ErrNilResult = errors.New("search: transition model is nil")

	// ErrNilGoal is returned when a Problem has no goal test.
	ErrNilGoal = errors.New("search: goal test is nil")

	// ErrNilDomain is returned by FromDomain when the domain is nil.
	ErrNilDomain = errors.New("search: domain is nil")

	// ErrNilProblem is returned when Search is called without a Problem.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilFrontier is returned when Search is called without a frontier.
	ErrNilFrontier = errors.New("search: frontier is nil")

	// ErrFrontierNotEmpty is returned when Search is handed a frontier that
	// still holds nodes from somewhere else.
	ErrFrontierNotEmpty = errors.New("search: frontier must be empty at start")

	// ErrNilExpansion is returned when a QueueSearch is built without an
	// expansion strategy.
	ErrNilExpansion = errors.New("search: expansion strategy is nil")

	// ErrTransition wraps an error returned by the transition model.
	ErrTransition = errors.New("search: transition failed")

	// ErrNegativeStepCost is returned when a step cost is negative or NaN.
	ErrNegativeStepCost = errors.New("search: step cost must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// GoalTestTiming selects when QueueSearch applies the goal test to a node.
type GoalTestTiming int

const (
	// AfterDequeue tests a node when it leaves the frontier, right before it
	// would be expanded. Depth-first search uses this timing.
	AfterDequeue GoalTestTiming = iota

	// BeforeEnqueue tests a node when it is generated, before it enters the
	// frontier. With unit step costs this returns a shortest path on first
	// discovery, so breadth-first search uses it.
	BeforeEnqueue
)

// String returns the timing name.
func (t GoalTestTiming) String() string {
	switch t {
	case AfterDequeue:
		return "after-dequeue"
	case BeforeEnqueue:
		return "before-enqueue"
	default:
		return fmt.Sprintf("GoalTestTiming(%d)", int(t))
	}
}

// valid reports whether t is one of the declared timings.
func (t GoalTestTiming) valid() bool {
	return t == AfterDequeue || t == BeforeEnqueue
}
