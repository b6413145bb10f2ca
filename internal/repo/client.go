// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/opora-health/opora_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/opora-health/opora_backend/internal/repo/assessmentsession"
	"github.com/opora-health/opora_backend/internal/repo/questionnaire"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssessmentSession is the client for interacting with the AssessmentSession builders.
	AssessmentSession *AssessmentSessionClient
	// Questionnaire is the client for interacting with the Questionnaire builders.
	Questionnaire *QuestionnaireClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssessmentSession = NewAssessmentSessionClient(c.config)
	c.Questionnaire = NewQuestionnaireClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AssessmentSession: NewAssessmentSessionClient(cfg),
		Questionnaire:     NewQuestionnaireClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AssessmentSession: NewAssessmentSessionClient(cfg),
		Questionnaire:     NewQuestionnaireClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssessmentSession.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AssessmentSession.Use(hooks...)
	c.Questionnaire.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AssessmentSession.Intercept(interceptors...)
	c.Questionnaire.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssessmentSessionMutation:
		return c.AssessmentSession.mutate(ctx, m)
	case *QuestionnaireMutation:
		return c.Questionnaire.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AssessmentSessionClient is a client for the AssessmentSession schema.
type AssessmentSessionClient struct {
	config
}

// NewAssessmentSessionClient returns a client for the AssessmentSession from the given config.
func NewAssessmentSessionClient(c config) *AssessmentSessionClient {
	return &AssessmentSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentsession.Hooks(f(g(h())))`.
func (c *AssessmentSessionClient) Use(hooks ...Hook) {
	c.hooks.AssessmentSession = append(c.hooks.AssessmentSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentsession.Intercept(f(g(h())))`.
func (c *AssessmentSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentSession = append(c.inters.AssessmentSession, interceptors...)
}

// Create returns a builder for creating a AssessmentSession entity.
func (c *AssessmentSessionClient) Create() *AssessmentSessionCreate {
	mutation := newAssessmentSessionMutation(c.config, OpCreate)
	return &AssessmentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentSession entities.
func (c *AssessmentSessionClient) CreateBulk(builders ...*AssessmentSessionCreate) *AssessmentSessionCreateBulk {
	return &AssessmentSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentSessionClient) MapCreateBulk(slice any, setFunc func(*AssessmentSessionCreate, int)) *AssessmentSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentSessionCreateBulk{err: fmt.Errorf("calling to AssessmentSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentSession.
func (c *AssessmentSessionClient) Update() *AssessmentSessionUpdate {
	mutation := newAssessmentSessionMutation(c.config, OpUpdate)
	return &AssessmentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentSessionClient) UpdateOne(_m *AssessmentSession) *AssessmentSessionUpdateOne {
	mutation := newAssessmentSessionMutation(c.config, OpUpdateOne, withAssessmentSession(_m))
	return &AssessmentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentSessionClient) UpdateOneID(id uuid.UUID) *AssessmentSessionUpdateOne {
	mutation := newAssessmentSessionMutation(c.config, OpUpdateOne, withAssessmentSessionID(id))
	return &AssessmentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentSession.
func (c *AssessmentSessionClient) Delete() *AssessmentSessionDelete {
	mutation := newAssessmentSessionMutation(c.config, OpDelete)
	return &AssessmentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentSessionClient) DeleteOne(_m *AssessmentSession) *AssessmentSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentSessionClient) DeleteOneID(id uuid.UUID) *AssessmentSessionDeleteOne {
	builder := c.Delete().Where(assessmentsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentSessionDeleteOne{builder}
}

// Query returns a query builder for AssessmentSession.
func (c *AssessmentSessionClient) Query() *AssessmentSessionQuery {
	return &AssessmentSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentSession entity by its id.
func (c *AssessmentSessionClient) Get(ctx context.Context, id uuid.UUID) (*AssessmentSession, error) {
	return c.Query().Where(assessmentsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentSessionClient) GetX(ctx context.Context, id uuid.UUID) *AssessmentSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestionnaires queries the questionnaires edge of a AssessmentSession.
func (c *AssessmentSessionClient) QueryQuestionnaires(_m *AssessmentSession) *QuestionnaireQuery {
	query := (&QuestionnaireClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentsession.Table, assessmentsession.FieldID, id),
			sqlgraph.To(questionnaire.Table, questionnaire.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assessmentsession.QuestionnairesTable, assessmentsession.QuestionnairesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AssessmentSessionClient) Hooks() []Hook {
	return c.hooks.AssessmentSession
}

// Interceptors returns the client interceptors.
func (c *AssessmentSessionClient) Interceptors() []Interceptor {
	return c.inters.AssessmentSession
}

func (c *AssessmentSessionClient) mutate(ctx context.Context, m *AssessmentSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AssessmentSession mutation op: %q", m.Op())
	}
}

// QuestionnaireClient is a client for the Questionnaire schema.
type QuestionnaireClient struct {
	config
}

// NewQuestionnaireClient returns a client for the Questionnaire from the given config.
func NewQuestionnaireClient(c config) *QuestionnaireClient {
	return &QuestionnaireClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionnaire.Hooks(f(g(h())))`.
func (c *QuestionnaireClient) Use(hooks ...Hook) {
	c.hooks.Questionnaire = append(c.hooks.Questionnaire, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionnaire.Intercept(f(g(h())))`.
func (c *QuestionnaireClient) Intercept(interceptors ...Interceptor) {
	c.inters.Questionnaire = append(c.inters.Questionnaire, interceptors...)
}

// Create returns a builder for creating a Questionnaire entity.
func (c *QuestionnaireClient) Create() *QuestionnaireCreate {
	mutation := newQuestionnaireMutation(c.config, OpCreate)
	return &QuestionnaireCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Questionnaire entities.
func (c *QuestionnaireClient) CreateBulk(builders ...*QuestionnaireCreate) *QuestionnaireCreateBulk {
	return &QuestionnaireCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionnaireClient) MapCreateBulk(slice any, setFunc func(*QuestionnaireCreate, int)) *QuestionnaireCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionnaireCreateBulk{err: fmt.Errorf("calling to QuestionnaireClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionnaireCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionnaireCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Questionnaire.
func (c *QuestionnaireClient) Update() *QuestionnaireUpdate {
	mutation := newQuestionnaireMutation(c.config, OpUpdate)
	return &QuestionnaireUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionnaireClient) UpdateOne(_m *Questionnaire) *QuestionnaireUpdateOne {
	mutation := newQuestionnaireMutation(c.config, OpUpdateOne, withQuestionnaire(_m))
	return &QuestionnaireUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionnaireClient) UpdateOneID(id uuid.UUID) *QuestionnaireUpdateOne {
	mutation := newQuestionnaireMutation(c.config, OpUpdateOne, withQuestionnaireID(id))
	return &QuestionnaireUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Questionnaire.
func (c *QuestionnaireClient) Delete() *QuestionnaireDelete {
	mutation := newQuestionnaireMutation(c.config, OpDelete)
	return &QuestionnaireDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionnaireClient) DeleteOne(_m *Questionnaire) *QuestionnaireDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionnaireClient) DeleteOneID(id uuid.UUID) *QuestionnaireDeleteOne {
	builder := c.Delete().Where(questionnaire.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionnaireDeleteOne{builder}
}

// Query returns a query builder for Questionnaire.
func (c *QuestionnaireClient) Query() *QuestionnaireQuery {
	return &QuestionnaireQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionnaire},
		inters: c.Interceptors(),
	}
}

// Get returns a Questionnaire entity by its id.
func (c *QuestionnaireClient) Get(ctx context.Context, id uuid.UUID) (*Questionnaire, error) {
	return c.Query().Where(questionnaire.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionnaireClient) GetX(ctx context.Context, id uuid.UUID) *Questionnaire {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Questionnaire.
func (c *QuestionnaireClient) QuerySession(_m *Questionnaire) *AssessmentSessionQuery {
	query := (&AssessmentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionnaire.Table, questionnaire.FieldID, id),
			sqlgraph.To(assessmentsession.Table, assessmentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, questionnaire.SessionTable, questionnaire.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionnaireClient) Hooks() []Hook {
	return c.hooks.Questionnaire
}

// Interceptors returns the client interceptors.
func (c *QuestionnaireClient) Interceptors() []Interceptor {
	return c.inters.Questionnaire
}

func (c *QuestionnaireClient) mutate(ctx context.Context, m *QuestionnaireMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionnaireCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionnaireUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionnaireUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionnaireDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Questionnaire mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssessmentSession, Questionnaire []ent.Hook
	}
	inters struct {
		AssessmentSession, Questionnaire []ent.Interceptor
	}
)
