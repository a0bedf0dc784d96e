package activity

// Dedup removes bonus-kind Activities that are folded-in representations of a
// mold-change evaluation already present from the dedicated source. Membership
// is keyed by the underlying record id (a folded bonus row carries the
// evaluation's own id), never by Activity id, which differs by construction.
// The dedicated-source Activity always wins.
func Dedup(activities []Activity) []Activity {
	dedicated := make(map[string]bool)
	for _, act := range activities {
		if act.Kind == KindMoldChangeMain || act.Kind == KindMoldChangeBuddy {
			key, err := ParseKey(act.ID)
			if err != nil {
				continue
			}
			dedicated[key.RecordID] = true
		}
	}
	if len(dedicated) == 0 {
		return activities
	}

	out := make([]Activity, 0, len(activities))
	for _, act := range activities {
		if act.Kind == KindBonus {
			key, err := ParseKey(act.ID)
			if err == nil && dedicated[key.RecordID] {
				continue
			}
		}
		out = append(out, act)
	}
	return out
}
