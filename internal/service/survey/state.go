package survey

// stageStep describes what answering the current pending stage triggers.
// The flow is a single forward path with one conditional branch: after
// stage 2 the follow-up call decides whether a third stage is inserted or
// the session jumps straight to report generation.
type stageStep struct {
	pending  QuestionnaireKind // kind of the questionnaire being answered
	stageTag string            // positional-id tag for the NEXT stage's questions
	next     Status
	nextKind QuestionnaireKind
	followup bool // next questions come from the follow-up call; empty means skip to report
	final    bool // answering this stage always completes the assessment
}

// stageFlow maps a session status to the transition its answer submission
// performs. Statuses absent from the table (intake_pending, finished) accept
// no answers.
var stageFlow = map[Status]stageStep{
	StatusStage1Pending: {
		pending:  KindStage1,
		stageTag: "2",
		next:     StatusStage2Pending,
		nextKind: KindStage2,
	},
	StatusStage2Pending: {
		pending:  KindStage2,
		stageTag: "3",
		next:     StatusStage3Pending,
		nextKind: KindStage3,
		followup: true,
	},
	StatusStage3Pending: {
		pending: KindStage3,
		final:   true,
	},
}
