package activity

// SourceKind identifies which original record type an Activity was derived
// from. Dual-role sources appear twice because the two roles are scored
// independently.
type SourceKind string

const (
	KindRoutineTask     SourceKind = "routine"
	KindWorkOrderMain   SourceKind = "workorder-main"
	KindWorkOrderBuddy  SourceKind = "workorder-buddy"
	KindQuality         SourceKind = "quality"
	KindHRChecklist     SourceKind = "hr-checklist"
	KindHROvertime      SourceKind = "hr-overtime"
	KindHRAbsence       SourceKind = "hr-absence"
	KindBonus           SourceKind = "bonus"
	KindControl         SourceKind = "control"
	KindMoldChangeMain  SourceKind = "moldchange-main"
	KindMoldChangeBuddy SourceKind = "moldchange-buddy"
)

type Role string

const (
	RoleNone  Role = ""
	RoleMain  Role = "main"
	RoleBuddy Role = "buddy"
)

var kindCategories = map[SourceKind]string{
	KindRoutineTask:     "Routine Tasks",
	KindWorkOrderMain:   "Work Orders",
	KindWorkOrderBuddy:  "Work Order Assists",
	KindQuality:         "Quality Evaluations",
	KindHRChecklist:     "HR Checklist",
	KindHROvertime:      "Overtime",
	KindHRAbsence:       "Absence",
	KindBonus:           "Bonus",
	KindControl:         "Control Scores",
	KindMoldChangeMain:  "Mold Changes",
	KindMoldChangeBuddy: "Mold Change Assists",
}

func (k SourceKind) Valid() bool {
	_, ok := kindCategories[k]
	return ok
}

// Category returns the display category driving bucket assignment.
func (k SourceKind) Category() string {
	return kindCategories[k]
}

// Role returns the participant role the kind designates, or RoleNone for
// single-participant sources.
func (k SourceKind) Role() Role {
	switch k {
	case KindWorkOrderMain, KindMoldChangeMain:
		return RoleMain
	case KindWorkOrderBuddy, KindMoldChangeBuddy:
		return RoleBuddy
	}
	return RoleNone
}

// subRecordKinds are the kinds expanded out of an HR period document; their
// composite keys carry a sub-record id.
func (k SourceKind) hasSubRecord() bool {
	switch k {
	case KindHRChecklist, KindHROvertime, KindHRAbsence:
		return true
	}
	return false
}
