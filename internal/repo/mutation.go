// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/opora-health/opora_backend/internal/repo/assessmentsession"
	"github.com/opora-health/opora_backend/internal/repo/predicate"
	"github.com/opora-health/opora_backend/internal/repo/questionnaire"
	"github.com/opora-health/opora_backend/internal/service/survey"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessmentSession = "AssessmentSession"
	TypeQuestionnaire     = "Questionnaire"
)

// AssessmentSessionMutation represents an operation that mutates the AssessmentSession nodes in the graph.
type AssessmentSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	owner_id              *uuid.UUID
	status                *survey.Status
	intake                **survey.Intake
	clearedFields         map[string]struct{}
	questionnaires        map[uuid.UUID]struct{}
	removedquestionnaires map[uuid.UUID]struct{}
	clearedquestionnaires bool
	done                  bool
	oldValue              func(context.Context) (*AssessmentSession, error)
	predicates            []predicate.AssessmentSession
}

var _ ent.Mutation = (*AssessmentSessionMutation)(nil)

// assessmentsessionOption allows management of the mutation configuration using functional options.
type assessmentsessionOption func(*AssessmentSessionMutation)

// newAssessmentSessionMutation creates new mutation for the AssessmentSession entity.
func newAssessmentSessionMutation(c config, op Op, opts ...assessmentsessionOption) *AssessmentSessionMutation {
	m := &AssessmentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentSessionID sets the ID field of the mutation.
func withAssessmentSessionID(id uuid.UUID) assessmentsessionOption {
	return func(m *AssessmentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentSession
		)
		m.oldValue = func(ctx context.Context) (*AssessmentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentSession sets the old AssessmentSession of the mutation.
func withAssessmentSession(node *AssessmentSession) assessmentsessionOption {
	return func(m *AssessmentSessionMutation) {
		m.oldValue = func(context.Context) (*AssessmentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AssessmentSession entities.
func (m *AssessmentSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AssessmentSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssessmentSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssessmentSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AssessmentSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AssessmentSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AssessmentSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *AssessmentSessionMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *AssessmentSessionMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldOwnerID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ClearOwnerID clears the value of the "owner_id" field.
func (m *AssessmentSessionMutation) ClearOwnerID() {
	m.owner_id = nil
	m.clearedFields[assessmentsession.FieldOwnerID] = struct{}{}
}

// OwnerIDCleared returns if the "owner_id" field was cleared in this mutation.
func (m *AssessmentSessionMutation) OwnerIDCleared() bool {
	_, ok := m.clearedFields[assessmentsession.FieldOwnerID]
	return ok
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *AssessmentSessionMutation) ResetOwnerID() {
	m.owner_id = nil
	delete(m.clearedFields, assessmentsession.FieldOwnerID)
}

// SetStatus sets the "status" field.
func (m *AssessmentSessionMutation) SetStatus(s survey.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AssessmentSessionMutation) Status() (r survey.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldStatus(ctx context.Context) (v survey.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AssessmentSessionMutation) ResetStatus() {
	m.status = nil
}

// SetIntake sets the "intake" field.
func (m *AssessmentSessionMutation) SetIntake(s *survey.Intake) {
	m.intake = &s
}

// Intake returns the value of the "intake" field in the mutation.
func (m *AssessmentSessionMutation) Intake() (r *survey.Intake, exists bool) {
	v := m.intake
	if v == nil {
		return
	}
	return *v, true
}

// OldIntake returns the old "intake" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldIntake(ctx context.Context) (v *survey.Intake, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntake is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntake requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntake: %w", err)
	}
	return oldValue.Intake, nil
}

// ClearIntake clears the value of the "intake" field.
func (m *AssessmentSessionMutation) ClearIntake() {
	m.intake = nil
	m.clearedFields[assessmentsession.FieldIntake] = struct{}{}
}

// IntakeCleared returns if the "intake" field was cleared in this mutation.
func (m *AssessmentSessionMutation) IntakeCleared() bool {
	_, ok := m.clearedFields[assessmentsession.FieldIntake]
	return ok
}

// ResetIntake resets all changes to the "intake" field.
func (m *AssessmentSessionMutation) ResetIntake() {
	m.intake = nil
	delete(m.clearedFields, assessmentsession.FieldIntake)
}

// AddQuestionnaireIDs adds the "questionnaires" edge to the Questionnaire entity by ids.
func (m *AssessmentSessionMutation) AddQuestionnaireIDs(ids ...uuid.UUID) {
	if m.questionnaires == nil {
		m.questionnaires = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questionnaires[ids[i]] = struct{}{}
	}
}

// ClearQuestionnaires clears the "questionnaires" edge to the Questionnaire entity.
func (m *AssessmentSessionMutation) ClearQuestionnaires() {
	m.clearedquestionnaires = true
}

// QuestionnairesCleared reports if the "questionnaires" edge to the Questionnaire entity was cleared.
func (m *AssessmentSessionMutation) QuestionnairesCleared() bool {
	return m.clearedquestionnaires
}

// RemoveQuestionnaireIDs removes the "questionnaires" edge to the Questionnaire entity by IDs.
func (m *AssessmentSessionMutation) RemoveQuestionnaireIDs(ids ...uuid.UUID) {
	if m.removedquestionnaires == nil {
		m.removedquestionnaires = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questionnaires, ids[i])
		m.removedquestionnaires[ids[i]] = struct{}{}
	}
}

// RemovedQuestionnaires returns the removed IDs of the "questionnaires" edge to the Questionnaire entity.
func (m *AssessmentSessionMutation) RemovedQuestionnairesIDs() (ids []uuid.UUID) {
	for id := range m.removedquestionnaires {
		ids = append(ids, id)
	}
	return
}

// QuestionnairesIDs returns the "questionnaires" edge IDs in the mutation.
func (m *AssessmentSessionMutation) QuestionnairesIDs() (ids []uuid.UUID) {
	for id := range m.questionnaires {
		ids = append(ids, id)
	}
	return
}

// ResetQuestionnaires resets all changes to the "questionnaires" edge.
func (m *AssessmentSessionMutation) ResetQuestionnaires() {
	m.questionnaires = nil
	m.clearedquestionnaires = false
	m.removedquestionnaires = nil
}

// Where appends a list predicates to the AssessmentSessionMutation builder.
func (m *AssessmentSessionMutation) Where(ps ...predicate.AssessmentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentSession).
func (m *AssessmentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentSessionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, assessmentsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, assessmentsession.FieldUpdatedAt)
	}
	if m.owner_id != nil {
		fields = append(fields, assessmentsession.FieldOwnerID)
	}
	if m.status != nil {
		fields = append(fields, assessmentsession.FieldStatus)
	}
	if m.intake != nil {
		fields = append(fields, assessmentsession.FieldIntake)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentsession.FieldCreatedAt:
		return m.CreatedAt()
	case assessmentsession.FieldUpdatedAt:
		return m.UpdatedAt()
	case assessmentsession.FieldOwnerID:
		return m.OwnerID()
	case assessmentsession.FieldStatus:
		return m.Status()
	case assessmentsession.FieldIntake:
		return m.Intake()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assessmentsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case assessmentsession.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case assessmentsession.FieldStatus:
		return m.OldStatus(ctx)
	case assessmentsession.FieldIntake:
		return m.OldIntake(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assessmentsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case assessmentsession.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case assessmentsession.FieldStatus:
		v, ok := value.(survey.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case assessmentsession.FieldIntake:
		v, ok := value.(*survey.Intake)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntake(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AssessmentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assessmentsession.FieldOwnerID) {
		fields = append(fields, assessmentsession.FieldOwnerID)
	}
	if m.FieldCleared(assessmentsession.FieldIntake) {
		fields = append(fields, assessmentsession.FieldIntake)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentSessionMutation) ClearField(name string) error {
	switch name {
	case assessmentsession.FieldOwnerID:
		m.ClearOwnerID()
		return nil
	case assessmentsession.FieldIntake:
		m.ClearIntake()
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentSessionMutation) ResetField(name string) error {
	switch name {
	case assessmentsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assessmentsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case assessmentsession.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case assessmentsession.FieldStatus:
		m.ResetStatus()
		return nil
	case assessmentsession.FieldIntake:
		m.ResetIntake()
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.questionnaires != nil {
		edges = append(edges, assessmentsession.EdgeQuestionnaires)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assessmentsession.EdgeQuestionnaires:
		ids := make([]ent.Value, 0, len(m.questionnaires))
		for id := range m.questionnaires {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedquestionnaires != nil {
		edges = append(edges, assessmentsession.EdgeQuestionnaires)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case assessmentsession.EdgeQuestionnaires:
		ids := make([]ent.Value, 0, len(m.removedquestionnaires))
		for id := range m.removedquestionnaires {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestionnaires {
		edges = append(edges, assessmentsession.EdgeQuestionnaires)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case assessmentsession.EdgeQuestionnaires:
		return m.clearedquestionnaires
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AssessmentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentSessionMutation) ResetEdge(name string) error {
	switch name {
	case assessmentsession.EdgeQuestionnaires:
		m.ResetQuestionnaires()
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession edge %s", name)
}

// QuestionnaireMutation represents an operation that mutates the Questionnaire nodes in the graph.
type QuestionnaireMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	kind            *survey.QuestionnaireKind
	questions       *[]survey.Question
	appendquestions []survey.Question
	symptoms        *[]survey.Symptom
	appendsymptoms  []survey.Symptom
	variants        *[]string
	appendvariants  []string
	report          **survey.Report
	answers         *survey.AnswerSet
	clearedFields   map[string]struct{}
	session         *uuid.UUID
	clearedsession  bool
	done            bool
	oldValue        func(context.Context) (*Questionnaire, error)
	predicates      []predicate.Questionnaire
}

var _ ent.Mutation = (*QuestionnaireMutation)(nil)

// questionnaireOption allows management of the mutation configuration using functional options.
type questionnaireOption func(*QuestionnaireMutation)

// newQuestionnaireMutation creates new mutation for the Questionnaire entity.
func newQuestionnaireMutation(c config, op Op, opts ...questionnaireOption) *QuestionnaireMutation {
	m := &QuestionnaireMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionnaire,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionnaireID sets the ID field of the mutation.
func withQuestionnaireID(id uuid.UUID) questionnaireOption {
	return func(m *QuestionnaireMutation) {
		var (
			err   error
			once  sync.Once
			value *Questionnaire
		)
		m.oldValue = func(ctx context.Context) (*Questionnaire, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Questionnaire.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionnaire sets the old Questionnaire of the mutation.
func withQuestionnaire(node *Questionnaire) questionnaireOption {
	return func(m *QuestionnaireMutation) {
		m.oldValue = func(context.Context) (*Questionnaire, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionnaireMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionnaireMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Questionnaire entities.
func (m *QuestionnaireMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionnaireMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionnaireMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Questionnaire.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionnaireMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionnaireMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionnaireMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *QuestionnaireMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuestionnaireMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QuestionnaireMutation) ResetSessionID() {
	m.session = nil
}

// SetKind sets the "kind" field.
func (m *QuestionnaireMutation) SetKind(sk survey.QuestionnaireKind) {
	m.kind = &sk
}

// Kind returns the value of the "kind" field in the mutation.
func (m *QuestionnaireMutation) Kind() (r survey.QuestionnaireKind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldKind(ctx context.Context) (v survey.QuestionnaireKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *QuestionnaireMutation) ResetKind() {
	m.kind = nil
}

// SetQuestions sets the "questions" field.
func (m *QuestionnaireMutation) SetQuestions(s []survey.Question) {
	m.questions = &s
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *QuestionnaireMutation) Questions() (r []survey.Question, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldQuestions(ctx context.Context) (v []survey.Question, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds s to the "questions" field.
func (m *QuestionnaireMutation) AppendQuestions(s []survey.Question) {
	m.appendquestions = append(m.appendquestions, s...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *QuestionnaireMutation) AppendedQuestions() ([]survey.Question, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ClearQuestions clears the value of the "questions" field.
func (m *QuestionnaireMutation) ClearQuestions() {
	m.questions = nil
	m.appendquestions = nil
	m.clearedFields[questionnaire.FieldQuestions] = struct{}{}
}

// QuestionsCleared returns if the "questions" field was cleared in this mutation.
func (m *QuestionnaireMutation) QuestionsCleared() bool {
	_, ok := m.clearedFields[questionnaire.FieldQuestions]
	return ok
}

// ResetQuestions resets all changes to the "questions" field.
func (m *QuestionnaireMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
	delete(m.clearedFields, questionnaire.FieldQuestions)
}

// SetSymptoms sets the "symptoms" field.
func (m *QuestionnaireMutation) SetSymptoms(s []survey.Symptom) {
	m.symptoms = &s
	m.appendsymptoms = nil
}

// Symptoms returns the value of the "symptoms" field in the mutation.
func (m *QuestionnaireMutation) Symptoms() (r []survey.Symptom, exists bool) {
	v := m.symptoms
	if v == nil {
		return
	}
	return *v, true
}

// OldSymptoms returns the old "symptoms" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldSymptoms(ctx context.Context) (v []survey.Symptom, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymptoms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymptoms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymptoms: %w", err)
	}
	return oldValue.Symptoms, nil
}

// AppendSymptoms adds s to the "symptoms" field.
func (m *QuestionnaireMutation) AppendSymptoms(s []survey.Symptom) {
	m.appendsymptoms = append(m.appendsymptoms, s...)
}

// AppendedSymptoms returns the list of values that were appended to the "symptoms" field in this mutation.
func (m *QuestionnaireMutation) AppendedSymptoms() ([]survey.Symptom, bool) {
	if len(m.appendsymptoms) == 0 {
		return nil, false
	}
	return m.appendsymptoms, true
}

// ClearSymptoms clears the value of the "symptoms" field.
func (m *QuestionnaireMutation) ClearSymptoms() {
	m.symptoms = nil
	m.appendsymptoms = nil
	m.clearedFields[questionnaire.FieldSymptoms] = struct{}{}
}

// SymptomsCleared returns if the "symptoms" field was cleared in this mutation.
func (m *QuestionnaireMutation) SymptomsCleared() bool {
	_, ok := m.clearedFields[questionnaire.FieldSymptoms]
	return ok
}

// ResetSymptoms resets all changes to the "symptoms" field.
func (m *QuestionnaireMutation) ResetSymptoms() {
	m.symptoms = nil
	m.appendsymptoms = nil
	delete(m.clearedFields, questionnaire.FieldSymptoms)
}

// SetVariants sets the "variants" field.
func (m *QuestionnaireMutation) SetVariants(s []string) {
	m.variants = &s
	m.appendvariants = nil
}

// Variants returns the value of the "variants" field in the mutation.
func (m *QuestionnaireMutation) Variants() (r []string, exists bool) {
	v := m.variants
	if v == nil {
		return
	}
	return *v, true
}

// OldVariants returns the old "variants" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldVariants(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariants: %w", err)
	}
	return oldValue.Variants, nil
}

// AppendVariants adds s to the "variants" field.
func (m *QuestionnaireMutation) AppendVariants(s []string) {
	m.appendvariants = append(m.appendvariants, s...)
}

// AppendedVariants returns the list of values that were appended to the "variants" field in this mutation.
func (m *QuestionnaireMutation) AppendedVariants() ([]string, bool) {
	if len(m.appendvariants) == 0 {
		return nil, false
	}
	return m.appendvariants, true
}

// ClearVariants clears the value of the "variants" field.
func (m *QuestionnaireMutation) ClearVariants() {
	m.variants = nil
	m.appendvariants = nil
	m.clearedFields[questionnaire.FieldVariants] = struct{}{}
}

// VariantsCleared returns if the "variants" field was cleared in this mutation.
func (m *QuestionnaireMutation) VariantsCleared() bool {
	_, ok := m.clearedFields[questionnaire.FieldVariants]
	return ok
}

// ResetVariants resets all changes to the "variants" field.
func (m *QuestionnaireMutation) ResetVariants() {
	m.variants = nil
	m.appendvariants = nil
	delete(m.clearedFields, questionnaire.FieldVariants)
}

// SetReport sets the "report" field.
func (m *QuestionnaireMutation) SetReport(s *survey.Report) {
	m.report = &s
}

// Report returns the value of the "report" field in the mutation.
func (m *QuestionnaireMutation) Report() (r *survey.Report, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReport returns the old "report" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldReport(ctx context.Context) (v *survey.Report, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReport: %w", err)
	}
	return oldValue.Report, nil
}

// ClearReport clears the value of the "report" field.
func (m *QuestionnaireMutation) ClearReport() {
	m.report = nil
	m.clearedFields[questionnaire.FieldReport] = struct{}{}
}

// ReportCleared returns if the "report" field was cleared in this mutation.
func (m *QuestionnaireMutation) ReportCleared() bool {
	_, ok := m.clearedFields[questionnaire.FieldReport]
	return ok
}

// ResetReport resets all changes to the "report" field.
func (m *QuestionnaireMutation) ResetReport() {
	m.report = nil
	delete(m.clearedFields, questionnaire.FieldReport)
}

// SetAnswers sets the "answers" field.
func (m *QuestionnaireMutation) SetAnswers(ss survey.AnswerSet) {
	m.answers = &ss
}

// Answers returns the value of the "answers" field in the mutation.
func (m *QuestionnaireMutation) Answers() (r survey.AnswerSet, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldAnswers(ctx context.Context) (v survey.AnswerSet, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// ClearAnswers clears the value of the "answers" field.
func (m *QuestionnaireMutation) ClearAnswers() {
	m.answers = nil
	m.clearedFields[questionnaire.FieldAnswers] = struct{}{}
}

// AnswersCleared returns if the "answers" field was cleared in this mutation.
func (m *QuestionnaireMutation) AnswersCleared() bool {
	_, ok := m.clearedFields[questionnaire.FieldAnswers]
	return ok
}

// ResetAnswers resets all changes to the "answers" field.
func (m *QuestionnaireMutation) ResetAnswers() {
	m.answers = nil
	delete(m.clearedFields, questionnaire.FieldAnswers)
}

// ClearSession clears the "session" edge to the AssessmentSession entity.
func (m *QuestionnaireMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[questionnaire.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AssessmentSession entity was cleared.
func (m *QuestionnaireMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *QuestionnaireMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *QuestionnaireMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the QuestionnaireMutation builder.
func (m *QuestionnaireMutation) Where(ps ...predicate.Questionnaire) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionnaireMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionnaireMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Questionnaire, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionnaireMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionnaireMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Questionnaire).
func (m *QuestionnaireMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionnaireMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, questionnaire.FieldCreatedAt)
	}
	if m.session != nil {
		fields = append(fields, questionnaire.FieldSessionID)
	}
	if m.kind != nil {
		fields = append(fields, questionnaire.FieldKind)
	}
	if m.questions != nil {
		fields = append(fields, questionnaire.FieldQuestions)
	}
	if m.symptoms != nil {
		fields = append(fields, questionnaire.FieldSymptoms)
	}
	if m.variants != nil {
		fields = append(fields, questionnaire.FieldVariants)
	}
	if m.report != nil {
		fields = append(fields, questionnaire.FieldReport)
	}
	if m.answers != nil {
		fields = append(fields, questionnaire.FieldAnswers)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionnaireMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionnaire.FieldCreatedAt:
		return m.CreatedAt()
	case questionnaire.FieldSessionID:
		return m.SessionID()
	case questionnaire.FieldKind:
		return m.Kind()
	case questionnaire.FieldQuestions:
		return m.Questions()
	case questionnaire.FieldSymptoms:
		return m.Symptoms()
	case questionnaire.FieldVariants:
		return m.Variants()
	case questionnaire.FieldReport:
		return m.Report()
	case questionnaire.FieldAnswers:
		return m.Answers()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionnaireMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionnaire.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case questionnaire.FieldSessionID:
		return m.OldSessionID(ctx)
	case questionnaire.FieldKind:
		return m.OldKind(ctx)
	case questionnaire.FieldQuestions:
		return m.OldQuestions(ctx)
	case questionnaire.FieldSymptoms:
		return m.OldSymptoms(ctx)
	case questionnaire.FieldVariants:
		return m.OldVariants(ctx)
	case questionnaire.FieldReport:
		return m.OldReport(ctx)
	case questionnaire.FieldAnswers:
		return m.OldAnswers(ctx)
	}
	return nil, fmt.Errorf("unknown Questionnaire field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionnaireMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionnaire.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case questionnaire.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case questionnaire.FieldKind:
		v, ok := value.(survey.QuestionnaireKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case questionnaire.FieldQuestions:
		v, ok := value.([]survey.Question)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case questionnaire.FieldSymptoms:
		v, ok := value.([]survey.Symptom)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymptoms(v)
		return nil
	case questionnaire.FieldVariants:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariants(v)
		return nil
	case questionnaire.FieldReport:
		v, ok := value.(*survey.Report)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReport(v)
		return nil
	case questionnaire.FieldAnswers:
		v, ok := value.(survey.AnswerSet)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown Questionnaire field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionnaireMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionnaireMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionnaireMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Questionnaire numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionnaireMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionnaire.FieldQuestions) {
		fields = append(fields, questionnaire.FieldQuestions)
	}
	if m.FieldCleared(questionnaire.FieldSymptoms) {
		fields = append(fields, questionnaire.FieldSymptoms)
	}
	if m.FieldCleared(questionnaire.FieldVariants) {
		fields = append(fields, questionnaire.FieldVariants)
	}
	if m.FieldCleared(questionnaire.FieldReport) {
		fields = append(fields, questionnaire.FieldReport)
	}
	if m.FieldCleared(questionnaire.FieldAnswers) {
		fields = append(fields, questionnaire.FieldAnswers)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionnaireMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionnaireMutation) ClearField(name string) error {
	switch name {
	case questionnaire.FieldQuestions:
		m.ClearQuestions()
		return nil
	case questionnaire.FieldSymptoms:
		m.ClearSymptoms()
		return nil
	case questionnaire.FieldVariants:
		m.ClearVariants()
		return nil
	case questionnaire.FieldReport:
		m.ClearReport()
		return nil
	case questionnaire.FieldAnswers:
		m.ClearAnswers()
		return nil
	}
	return fmt.Errorf("unknown Questionnaire nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionnaireMutation) ResetField(name string) error {
	switch name {
	case questionnaire.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case questionnaire.FieldSessionID:
		m.ResetSessionID()
		return nil
	case questionnaire.FieldKind:
		m.ResetKind()
		return nil
	case questionnaire.FieldQuestions:
		m.ResetQuestions()
		return nil
	case questionnaire.FieldSymptoms:
		m.ResetSymptoms()
		return nil
	case questionnaire.FieldVariants:
		m.ResetVariants()
		return nil
	case questionnaire.FieldReport:
		m.ResetReport()
		return nil
	case questionnaire.FieldAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown Questionnaire field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionnaireMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, questionnaire.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionnaireMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case questionnaire.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionnaireMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionnaireMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionnaireMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, questionnaire.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionnaireMutation) EdgeCleared(name string) bool {
	switch name {
	case questionnaire.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionnaireMutation) ClearEdge(name string) error {
	switch name {
	case questionnaire.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Questionnaire unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionnaireMutation) ResetEdge(name string) error {
	switch name {
	case questionnaire.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Questionnaire edge %s", name)
}
