package activity

import "testing"

func TestDedupRemovesFoldedBonus(t *testing.T) {
	dedicated := newActivity(Key{Kind: KindMoldChangeMain, RecordID: "mc-1"}, "Mold change", day1, 10, 12)
	folded := newActivity(Key{Kind: KindBonus, RecordID: "mc-1"}, "Mold change", day1, 10, 12)
	plainBonus := newActivity(Key{Kind: KindBonus, RecordID: "b-1"}, "Monthly bonus", day2, 5, 5)

	out := Dedup([]Activity{folded, dedicated, plainBonus})
	if len(out) != 2 {
		t.Fatalf("expected 2 activities after dedup, got %d", len(out))
	}
	for _, act := range out {
		if act.Kind == KindBonus && act.ID == "bonus:mc-1" {
			t.Fatal("folded bonus activity should have been removed")
		}
	}
}

func TestDedupDedicatedWinsForEitherRole(t *testing.T) {
	buddy := newActivity(Key{Kind: KindMoldChangeBuddy, RecordID: "mc-1"}, "Mold change", day1, 8, 12)
	folded := newActivity(Key{Kind: KindBonus, RecordID: "mc-1"}, "Mold change", day1, 8, 12)

	out := Dedup([]Activity{buddy, folded})
	if len(out) != 1 || out[0].Kind != KindMoldChangeBuddy {
		t.Fatalf("dedicated buddy activity should win, got %+v", out)
	}
}

func TestDedupKeepsUnrelatedBonus(t *testing.T) {
	dedicated := newActivity(Key{Kind: KindMoldChangeMain, RecordID: "mc-1"}, "Mold change", day1, 10, 12)
	other := newActivity(Key{Kind: KindBonus, RecordID: "mc-2"}, "Bonus", day1, 3, 5)

	out := Dedup([]Activity{dedicated, other})
	if len(out) != 2 {
		t.Fatalf("unrelated bonus must survive, got %d", len(out))
	}
}

func TestDedupFoldedSurvivesWithoutDedicated(t *testing.T) {
	folded := newActivity(Key{Kind: KindBonus, RecordID: "mc-1"}, "Mold change", day1, 10, 12)
	out := Dedup([]Activity{folded})
	if len(out) != 1 {
		t.Fatal("folded bonus stays when the dedicated source did not return the record")
	}
}
