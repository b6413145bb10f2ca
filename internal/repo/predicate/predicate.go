// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentSession is the predicate function for assessmentsession builders.
type AssessmentSession func(*sql.Selector)

// Questionnaire is the predicate function for questionnaire builders.
type Questionnaire func(*sql.Selector)
