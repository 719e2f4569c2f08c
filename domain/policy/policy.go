// Package policy holds the pure authorization predicates. Every rule takes
// the caller's profile (and the task where relevant) and answers yes or no;
// state checks such as "task is still new" are handled by the lifecycle
// logic, not here, so callers can tell "not permitted" apart from "wrong
// state".
package policy

import (
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
)

// CanCreateTask: any authenticated profile with a resolved role.
func CanCreateTask(p *models.Profile) bool {
	return p != nil && p.Role.Valid()
}

// CanAcceptTask: any role may claim an unassigned task. The status==new
// precondition is enforced by the lifecycle engine.
func CanAcceptTask(p *models.Profile) bool {
	return p != nil && p.Role.Valid()
}

// CanAssignTask: force-assign and reassign are supervisor moves.
func CanAssignTask(p *models.Profile) bool {
	return p != nil && p.IsSupervisor()
}

// CanUpdateTask covers status changes and note edits: supervisors, the
// current assignee (by display name), or anyone sharing the creating role.
// The role-level creator match is deliberate - ward responsibility is
// shared, so any nurse may touch a nurse-created task.
func CanUpdateTask(p *models.Profile, t *models.Task) bool {
	if p == nil || t == nil {
		return false
	}
	if p.IsSupervisor() {
		return true
	}
	if t.Assignee() != "" && t.Assignee() == p.Name {
		return true
	}
	return t.CreatedBy == p.Role
}

// CanDeleteTask: supervisors or anyone sharing the creating role.
func CanDeleteTask(p *models.Profile, t *models.Task) bool {
	if p == nil || t == nil {
		return false
	}
	return p.IsSupervisor() || t.CreatedBy == p.Role
}

// CanViewAnalytics: supervisor only.
func CanViewAnalytics(p *models.Profile) bool {
	return p != nil && p.IsSupervisor()
}

// CanRegisterLogo: supervisor only.
func CanRegisterLogo(p *models.Profile) bool {
	return p != nil && p.IsSupervisor()
}
