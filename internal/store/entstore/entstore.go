// Package entstore persists assessment sessions through the ent data layer.
package entstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/opora-health/opora_backend/internal/repo"
	entsession "github.com/opora-health/opora_backend/internal/repo/assessmentsession"
	entquestionnaire "github.com/opora-health/opora_backend/internal/repo/questionnaire"
	"github.com/opora-health/opora_backend/internal/service/survey"
)

// Store implements survey.Store on Postgres via ent.
type Store struct {
	db *repo.Client
}

func New(db *repo.Client) *Store {
	return &Store{db: db}
}

var _ survey.Store = (*Store)(nil)

func (s *Store) CreateSession(ctx context.Context, ownerID *uuid.UUID, first survey.NewQuestionnaire) (*survey.Session, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	sess, err := tx.AssessmentSession.Create().
		SetNillableOwnerID(ownerID).
		SetStatus(survey.StatusIntakePending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if _, err = createQuestionnaire(ctx, tx, sess.ID, first); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetSession(ctx, sess.ID)
}

func (s *Store) GetSession(ctx context.Context, id uuid.UUID) (*survey.Session, error) {
	sess, err := s.db.AssessmentSession.Query().
		Where(entsession.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, survey.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	stages, err := s.db.Questionnaire.Query().
		Where(entquestionnaire.SessionID(id)).
		Order(entquestionnaire.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questionnaires: %w", err)
	}
	return toDomain(sess, stages), nil
}

// ApplyTransition performs one status-guarded state-machine step inside a
// transaction. The guarded UPDATE makes concurrent submissions resolve to a
// single winner: the loser's guard matches zero rows.
func (s *Store) ApplyTransition(ctx context.Context, t survey.Transition) (*survey.Session, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	upd := tx.AssessmentSession.Update().
		Where(
			entsession.ID(t.SessionID),
			entsession.StatusEQ(t.From),
		).
		SetStatus(t.To)
	if t.Intake != nil {
		upd = upd.SetIntake(t.Intake)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	if n == 0 {
		// guard failed: distinguish a missing session from a lost race
		exists, eerr := tx.AssessmentSession.Query().
			Where(entsession.ID(t.SessionID)).
			Exist(ctx)
		if eerr != nil {
			err = fmt.Errorf("check session: %w", eerr)
			return nil, err
		}
		if !exists {
			err = survey.ErrNotFound
		} else {
			err = survey.ErrConflictingTransition
		}
		return nil, err
	}

	if t.Answers != nil {
		if err = tx.Questionnaire.UpdateOneID(t.AnswerQuestionnaire).
			SetAnswers(t.Answers).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("record answers: %w", err)
		}
	}
	if t.Append != nil {
		if _, err = createQuestionnaire(ctx, tx, t.SessionID, *t.Append); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetSession(ctx, t.SessionID)
}

func createQuestionnaire(ctx context.Context, tx *repo.Tx, sessionID uuid.UUID, nq survey.NewQuestionnaire) (*repo.Questionnaire, error) {
	c := tx.Questionnaire.Create().
		SetSessionID(sessionID).
		SetKind(nq.Kind)
	if len(nq.Questions) > 0 {
		c = c.SetQuestions(nq.Questions)
	}
	if len(nq.Symptoms) > 0 {
		c = c.SetSymptoms(nq.Symptoms)
	}
	if len(nq.Variants) > 0 {
		c = c.SetVariants(nq.Variants)
	}
	if nq.Report != nil {
		c = c.SetReport(nq.Report)
	}

	q, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create %s questionnaire: %w", nq.Kind, err)
	}
	return q, nil
}

func toDomain(sess *repo.AssessmentSession, stages []*repo.Questionnaire) *survey.Session {
	out := &survey.Session{
		ID:        sess.ID,
		OwnerID:   sess.OwnerID,
		Status:    sess.Status,
		Intake:    sess.Intake,
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
	}
	out.Questionnaires = make([]survey.Questionnaire, 0, len(stages))
	for _, q := range stages {
		out.Questionnaires = append(out.Questionnaires, survey.Questionnaire{
			ID:        q.ID,
			SessionID: q.SessionID,
			Kind:      q.Kind,
			Questions: q.Questions,
			Symptoms:  q.Symptoms,
			Variants:  q.Variants,
			Report:    q.Report,
			Answers:   q.Answers,
			CreatedAt: q.CreatedAt,
		})
	}
	return out
}
