// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/opora-health/opora_backend/internal/repo/assessmentsession"
	"github.com/opora-health/opora_backend/internal/repo/questionnaire"
	"github.com/opora-health/opora_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentsessionMixin := schema.AssessmentSession{}.Mixin()
	assessmentsessionMixinFields0 := assessmentsessionMixin[0].Fields()
	_ = assessmentsessionMixinFields0
	assessmentsessionMixinFields1 := assessmentsessionMixin[1].Fields()
	_ = assessmentsessionMixinFields1
	assessmentsessionFields := schema.AssessmentSession{}.Fields()
	_ = assessmentsessionFields
	// assessmentsessionDescCreatedAt is the schema descriptor for created_at field.
	assessmentsessionDescCreatedAt := assessmentsessionMixinFields1[0].Descriptor()
	// assessmentsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	assessmentsession.DefaultCreatedAt = assessmentsessionDescCreatedAt.Default.(func() time.Time)
	// assessmentsessionDescUpdatedAt is the schema descriptor for updated_at field.
	assessmentsessionDescUpdatedAt := assessmentsessionMixinFields1[1].Descriptor()
	// assessmentsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assessmentsession.DefaultUpdatedAt = assessmentsessionDescUpdatedAt.Default.(func() time.Time)
	// assessmentsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assessmentsession.UpdateDefaultUpdatedAt = assessmentsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// assessmentsessionDescID is the schema descriptor for id field.
	assessmentsessionDescID := assessmentsessionMixinFields0[0].Descriptor()
	// assessmentsession.DefaultID holds the default value on creation for the id field.
	assessmentsession.DefaultID = assessmentsessionDescID.Default.(func() uuid.UUID)
	questionnaireMixin := schema.Questionnaire{}.Mixin()
	questionnaireMixinFields0 := questionnaireMixin[0].Fields()
	_ = questionnaireMixinFields0
	questionnaireMixinFields1 := questionnaireMixin[1].Fields()
	_ = questionnaireMixinFields1
	questionnaireFields := schema.Questionnaire{}.Fields()
	_ = questionnaireFields
	// questionnaireDescCreatedAt is the schema descriptor for created_at field.
	questionnaireDescCreatedAt := questionnaireMixinFields1[0].Descriptor()
	// questionnaire.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionnaire.DefaultCreatedAt = questionnaireDescCreatedAt.Default.(func() time.Time)
	// questionnaireDescID is the schema descriptor for id field.
	questionnaireDescID := questionnaireMixinFields0[0].Descriptor()
	// questionnaire.DefaultID holds the default value on creation for the id field.
	questionnaire.DefaultID = questionnaireDescID.Default.(func() uuid.UUID)
}
