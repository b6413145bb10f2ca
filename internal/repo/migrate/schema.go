// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentSessionsColumns holds the columns for the "assessment_sessions" table.
	AssessmentSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"intake_pending", "stage1_pending", "stage2_pending", "stage3_pending", "finished"}, Default: "intake_pending"},
		{Name: "intake", Type: field.TypeJSON, Nullable: true},
	}
	// AssessmentSessionsTable holds the schema information for the "assessment_sessions" table.
	AssessmentSessionsTable = &schema.Table{
		Name:       "assessment_sessions",
		Columns:    AssessmentSessionsColumns,
		PrimaryKey: []*schema.Column{AssessmentSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentsession_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{AssessmentSessionsColumns[3], AssessmentSessionsColumns[4]},
			},
			{
				Name:    "assessmentsession_status",
				Unique:  false,
				Columns: []*schema.Column{AssessmentSessionsColumns[4]},
			},
		},
	}
	// QuestionnairesColumns holds the columns for the "questionnaires" table.
	QuestionnairesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"symptom_list", "variants", "stage_1", "stage_2", "stage_3", "result"}},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
		{Name: "symptoms", Type: field.TypeJSON, Nullable: true},
		{Name: "variants", Type: field.TypeJSON, Nullable: true},
		{Name: "report", Type: field.TypeJSON, Nullable: true},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// QuestionnairesTable holds the schema information for the "questionnaires" table.
	QuestionnairesTable = &schema.Table{
		Name:       "questionnaires",
		Columns:    QuestionnairesColumns,
		PrimaryKey: []*schema.Column{QuestionnairesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questionnaires_assessment_sessions_questionnaires",
				Columns:    []*schema.Column{QuestionnairesColumns[8]},
				RefColumns: []*schema.Column{AssessmentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "questionnaire_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionnairesColumns[8], QuestionnairesColumns[1]},
			},
			{
				Name:    "questionnaire_session_id_kind",
				Unique:  true,
				Columns: []*schema.Column{QuestionnairesColumns[8], QuestionnairesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentSessionsTable,
		QuestionnairesTable,
	}
)

func init() {
	QuestionnairesTable.ForeignKeys[0].RefTable = AssessmentSessionsTable
}
