package survey

import "testing"

func TestStatusOrdering(t *testing.T) {
	ordered := []Status{
		StatusIntakePending,
		StatusStage1Pending,
		StatusStage2Pending,
		StatusStage3Pending,
		StatusFinished,
	}
	for i, s := range ordered {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
		for _, later := range ordered[i+1:] {
			if !s.Before(later) {
				t.Errorf("%s should precede %s", s, later)
			}
			if later.Before(s) {
				t.Errorf("%s should not precede %s", later, s)
			}
		}
	}
	if Status("bogus").Valid() {
		t.Error("unknown status should be invalid")
	}
	if !StatusFinished.Terminal() || StatusStage3Pending.Terminal() {
		t.Error("only finished is terminal")
	}
}

func TestStageFlowCoversAnswerableStatuses(t *testing.T) {
	for _, s := range []Status{StatusIntakePending, StatusFinished} {
		if _, ok := stageFlow[s]; ok {
			t.Errorf("%s must not accept answers", s)
		}
	}

	s1 := stageFlow[StatusStage1Pending]
	if s1.pending != KindStage1 || s1.next != StatusStage2Pending || s1.followup || s1.final {
		t.Errorf("stage 1 step = %+v", s1)
	}
	s2 := stageFlow[StatusStage2Pending]
	if s2.pending != KindStage2 || !s2.followup || s2.final {
		t.Errorf("stage 2 step = %+v", s2)
	}
	s3 := stageFlow[StatusStage3Pending]
	if s3.pending != KindStage3 || !s3.final {
		t.Errorf("stage 3 step = %+v", s3)
	}
}
