// Package onboarding defines the data shown on the onboarding dashboard.
//
// Values are built once at startup and handed to the web layer by value.
// Nothing in this package mutates a Snapshot after construction.
package onboarding

import (
	"errors"
	"fmt"
	"strings"
)

// MinProgress and MaxProgress bound Journey.Progress.
const (
	MinProgress = 0
	MaxProgress = 100
)

// ErrInvalidSnapshot marks a data set that failed validation.
var ErrInvalidSnapshot = errors.New("invalid onboarding snapshot")

// User is the person being onboarded.
type User struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
}

// FirstName returns the text before the first space of Name.
func (u User) FirstName() string {
	name := strings.TrimSpace(u.Name)
	first, _, _ := strings.Cut(name, " ")
	return first
}

// Task is one checklist line. Order in its parent list is display order.
type Task struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Journey tracks overall onboarding progress as a percentage in [0, 100].
type Journey struct {
	Progress int    `json:"progress"`
	Tasks    []Task `json:"tasks"`
}

// CompletedCount returns how many tasks are completed.
func (j Journey) CompletedCount() int {
	return countCompleted(j.Tasks)
}

// FirstTasks is the highlighted task and its sub-steps.
type FirstTasks struct {
	MainTask string `json:"mainTask"`
	SubTasks []Task `json:"subTasks"`
}

// TeamMember is one entry of the team roster.
type TeamMember struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Snapshot is the full data set rendered by one dashboard page.
type Snapshot struct {
	User       User         `json:"user"`
	Journey    Journey      `json:"onboardingJourney"`
	FirstTasks FirstTasks   `json:"firstTasks"`
	Team       []TeamMember `json:"teamMembers"`
}

// Clone returns a deep copy so callers never share backing arrays.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Journey.Tasks = cloneTasks(s.Journey.Tasks)
	out.FirstTasks.SubTasks = cloneTasks(s.FirstTasks.SubTasks)
	if s.Team != nil {
		out.Team = make([]TeamMember, len(s.Team))
		copy(out.Team, s.Team)
	}
	return out
}

// Validate checks the invariants a loaded data set must satisfy before it is
// rendered. Rendering itself never validates.
func (s Snapshot) Validate() error {
	var problems []string
	if strings.TrimSpace(s.User.Name) == "" {
		problems = append(problems, "user name is required")
	}
	if s.Journey.Progress < MinProgress || s.Journey.Progress > MaxProgress {
		problems = append(problems, fmt.Sprintf("progress %d outside [%d, %d]", s.Journey.Progress, MinProgress, MaxProgress))
	}
	for i, task := range s.Journey.Tasks {
		if strings.TrimSpace(task.Text) == "" {
			problems = append(problems, fmt.Sprintf("onboarding task %d text is required", i))
		}
	}
	for i, task := range s.FirstTasks.SubTasks {
		if strings.TrimSpace(task.Text) == "" {
			problems = append(problems, fmt.Sprintf("sub-task %d text is required", i))
		}
	}
	for i, member := range s.Team {
		if strings.TrimSpace(member.Name) == "" {
			problems = append(problems, fmt.Sprintf("team member %d name is required", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSnapshot, strings.Join(problems, "; "))
	}
	return nil
}

func cloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

func countCompleted(tasks []Task) int {
	n := 0
	for _, task := range tasks {
		if task.Completed {
			n++
		}
	}
	return n
}
