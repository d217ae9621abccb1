// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/vibecheck/vibecheck/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vibecheck/vibecheck/ent/agentlog"
	"github.com/vibecheck/vibecheck/ent/assessment"
	"github.com/vibecheck/vibecheck/ent/finding"
	"github.com/vibecheck/vibecheck/ent/tunnelsession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentLog is the client for interacting with the AgentLog builders.
	AgentLog *AgentLogClient
	// Assessment is the client for interacting with the Assessment builders.
	Assessment *AssessmentClient
	// Finding is the client for interacting with the Finding builders.
	Finding *FindingClient
	// TunnelSession is the client for interacting with the TunnelSession builders.
	TunnelSession *TunnelSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentLog = NewAgentLogClient(c.config)
	c.Assessment = NewAssessmentClient(c.config)
	c.Finding = NewFindingClient(c.config)
	c.TunnelSession = NewTunnelSessionClient(c.config)
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
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		AgentLog:      NewAgentLogClient(cfg),
		Assessment:    NewAssessmentClient(cfg),
		Finding:       NewFindingClient(cfg),
		TunnelSession: NewTunnelSessionClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		AgentLog:      NewAgentLogClient(cfg),
		Assessment:    NewAssessmentClient(cfg),
		Finding:       NewFindingClient(cfg),
		TunnelSession: NewTunnelSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentLog.
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
	c.AgentLog.Use(hooks...)
	c.Assessment.Use(hooks...)
	c.Finding.Use(hooks...)
	c.TunnelSession.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AgentLog.Intercept(interceptors...)
	c.Assessment.Intercept(interceptors...)
	c.Finding.Intercept(interceptors...)
	c.TunnelSession.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentLogMutation:
		return c.AgentLog.mutate(ctx, m)
	case *AssessmentMutation:
		return c.Assessment.mutate(ctx, m)
	case *FindingMutation:
		return c.Finding.mutate(ctx, m)
	case *TunnelSessionMutation:
		return c.TunnelSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentLogClient is a client for the AgentLog schema.
type AgentLogClient struct {
	config
}

// NewAgentLogClient returns a client for the AgentLog from the given config.
func NewAgentLogClient(c config) *AgentLogClient {
	return &AgentLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentlog.Hooks(f(g(h())))`.
func (c *AgentLogClient) Use(hooks ...Hook) {
	c.hooks.AgentLog = append(c.hooks.AgentLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentlog.Intercept(f(g(h())))`.
func (c *AgentLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentLog = append(c.inters.AgentLog, interceptors...)
}

// Create returns a builder for creating a AgentLog entity.
func (c *AgentLogClient) Create() *AgentLogCreate {
	mutation := newAgentLogMutation(c.config, OpCreate)
	return &AgentLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentLog entities.
func (c *AgentLogClient) CreateBulk(builders ...*AgentLogCreate) *AgentLogCreateBulk {
	return &AgentLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentLogClient) MapCreateBulk(slice any, setFunc func(*AgentLogCreate, int)) *AgentLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentLogCreateBulk{err: fmt.Errorf("calling to AgentLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentLog.
func (c *AgentLogClient) Update() *AgentLogUpdate {
	mutation := newAgentLogMutation(c.config, OpUpdate)
	return &AgentLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentLogClient) UpdateOne(_m *AgentLog) *AgentLogUpdateOne {
	mutation := newAgentLogMutation(c.config, OpUpdateOne, withAgentLog(_m))
	return &AgentLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentLogClient) UpdateOneID(id string) *AgentLogUpdateOne {
	mutation := newAgentLogMutation(c.config, OpUpdateOne, withAgentLogID(id))
	return &AgentLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentLog.
func (c *AgentLogClient) Delete() *AgentLogDelete {
	mutation := newAgentLogMutation(c.config, OpDelete)
	return &AgentLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentLogClient) DeleteOne(_m *AgentLog) *AgentLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentLogClient) DeleteOneID(id string) *AgentLogDeleteOne {
	builder := c.Delete().Where(agentlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentLogDeleteOne{builder}
}

// Query returns a query builder for AgentLog.
func (c *AgentLogClient) Query() *AgentLogQuery {
	return &AgentLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentLog entity by its id.
func (c *AgentLogClient) Get(ctx context.Context, id string) (*AgentLog, error) {
	return c.Query().Where(agentlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentLogClient) GetX(ctx context.Context, id string) *AgentLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAssessment queries the assessment edge of a AgentLog.
func (c *AgentLogClient) QueryAssessment(_m *AgentLog) *AssessmentQuery {
	query := (&AssessmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentlog.Table, agentlog.FieldID, id),
			sqlgraph.To(assessment.Table, assessment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentlog.AssessmentTable, agentlog.AssessmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentLogClient) Hooks() []Hook {
	return c.hooks.AgentLog
}

// Interceptors returns the client interceptors.
func (c *AgentLogClient) Interceptors() []Interceptor {
	return c.inters.AgentLog
}

func (c *AgentLogClient) mutate(ctx context.Context, m *AgentLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentLog mutation op: %q", m.Op())
	}
}

// AssessmentClient is a client for the Assessment schema.
type AssessmentClient struct {
	config
}

// NewAssessmentClient returns a client for the Assessment from the given config.
func NewAssessmentClient(c config) *AssessmentClient {
	return &AssessmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessment.Hooks(f(g(h())))`.
func (c *AssessmentClient) Use(hooks ...Hook) {
	c.hooks.Assessment = append(c.hooks.Assessment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessment.Intercept(f(g(h())))`.
func (c *AssessmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Assessment = append(c.inters.Assessment, interceptors...)
}

// Create returns a builder for creating a Assessment entity.
func (c *AssessmentClient) Create() *AssessmentCreate {
	mutation := newAssessmentMutation(c.config, OpCreate)
	return &AssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Assessment entities.
func (c *AssessmentClient) CreateBulk(builders ...*AssessmentCreate) *AssessmentCreateBulk {
	return &AssessmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentClient) MapCreateBulk(slice any, setFunc func(*AssessmentCreate, int)) *AssessmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentCreateBulk{err: fmt.Errorf("calling to AssessmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Assessment.
func (c *AssessmentClient) Update() *AssessmentUpdate {
	mutation := newAssessmentMutation(c.config, OpUpdate)
	return &AssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentClient) UpdateOne(_m *Assessment) *AssessmentUpdateOne {
	mutation := newAssessmentMutation(c.config, OpUpdateOne, withAssessment(_m))
	return &AssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentClient) UpdateOneID(id string) *AssessmentUpdateOne {
	mutation := newAssessmentMutation(c.config, OpUpdateOne, withAssessmentID(id))
	return &AssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Assessment.
func (c *AssessmentClient) Delete() *AssessmentDelete {
	mutation := newAssessmentMutation(c.config, OpDelete)
	return &AssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentClient) DeleteOne(_m *Assessment) *AssessmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentClient) DeleteOneID(id string) *AssessmentDeleteOne {
	builder := c.Delete().Where(assessment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentDeleteOne{builder}
}

// Query returns a query builder for Assessment.
func (c *AssessmentClient) Query() *AssessmentQuery {
	return &AssessmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessment},
		inters: c.Interceptors(),
	}
}

// Get returns a Assessment entity by its id.
func (c *AssessmentClient) Get(ctx context.Context, id string) (*Assessment, error) {
	return c.Query().Where(assessment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentClient) GetX(ctx context.Context, id string) *Assessment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFindings queries the findings edge of a Assessment.
func (c *AssessmentClient) QueryFindings(_m *Assessment) *FindingQuery {
	query := (&FindingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessment.Table, assessment.FieldID, id),
			sqlgraph.To(finding.Table, finding.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assessment.FindingsTable, assessment.FindingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentLogs queries the agent_logs edge of a Assessment.
func (c *AssessmentClient) QueryAgentLogs(_m *Assessment) *AgentLogQuery {
	query := (&AgentLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessment.Table, assessment.FieldID, id),
			sqlgraph.To(agentlog.Table, agentlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assessment.AgentLogsTable, assessment.AgentLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AssessmentClient) Hooks() []Hook {
	return c.hooks.Assessment
}

// Interceptors returns the client interceptors.
func (c *AssessmentClient) Interceptors() []Interceptor {
	return c.inters.Assessment
}

func (c *AssessmentClient) mutate(ctx context.Context, m *AssessmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Assessment mutation op: %q", m.Op())
	}
}

// FindingClient is a client for the Finding schema.
type FindingClient struct {
	config
}

// NewFindingClient returns a client for the Finding from the given config.
func NewFindingClient(c config) *FindingClient {
	return &FindingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `finding.Hooks(f(g(h())))`.
func (c *FindingClient) Use(hooks ...Hook) {
	c.hooks.Finding = append(c.hooks.Finding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `finding.Intercept(f(g(h())))`.
func (c *FindingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Finding = append(c.inters.Finding, interceptors...)
}

// Create returns a builder for creating a Finding entity.
func (c *FindingClient) Create() *FindingCreate {
	mutation := newFindingMutation(c.config, OpCreate)
	return &FindingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Finding entities.
func (c *FindingClient) CreateBulk(builders ...*FindingCreate) *FindingCreateBulk {
	return &FindingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FindingClient) MapCreateBulk(slice any, setFunc func(*FindingCreate, int)) *FindingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FindingCreateBulk{err: fmt.Errorf("calling to FindingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FindingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FindingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Finding.
func (c *FindingClient) Update() *FindingUpdate {
	mutation := newFindingMutation(c.config, OpUpdate)
	return &FindingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FindingClient) UpdateOne(_m *Finding) *FindingUpdateOne {
	mutation := newFindingMutation(c.config, OpUpdateOne, withFinding(_m))
	return &FindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FindingClient) UpdateOneID(id string) *FindingUpdateOne {
	mutation := newFindingMutation(c.config, OpUpdateOne, withFindingID(id))
	return &FindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Finding.
func (c *FindingClient) Delete() *FindingDelete {
	mutation := newFindingMutation(c.config, OpDelete)
	return &FindingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FindingClient) DeleteOne(_m *Finding) *FindingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FindingClient) DeleteOneID(id string) *FindingDeleteOne {
	builder := c.Delete().Where(finding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FindingDeleteOne{builder}
}

// Query returns a query builder for Finding.
func (c *FindingClient) Query() *FindingQuery {
	return &FindingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFinding},
		inters: c.Interceptors(),
	}
}

// Get returns a Finding entity by its id.
func (c *FindingClient) Get(ctx context.Context, id string) (*Finding, error) {
	return c.Query().Where(finding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FindingClient) GetX(ctx context.Context, id string) *Finding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAssessment queries the assessment edge of a Finding.
func (c *FindingClient) QueryAssessment(_m *Finding) *AssessmentQuery {
	query := (&AssessmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(finding.Table, finding.FieldID, id),
			sqlgraph.To(assessment.Table, assessment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, finding.AssessmentTable, finding.AssessmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FindingClient) Hooks() []Hook {
	return c.hooks.Finding
}

// Interceptors returns the client interceptors.
func (c *FindingClient) Interceptors() []Interceptor {
	return c.inters.Finding
}

func (c *FindingClient) mutate(ctx context.Context, m *FindingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FindingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FindingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FindingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Finding mutation op: %q", m.Op())
	}
}

// TunnelSessionClient is a client for the TunnelSession schema.
type TunnelSessionClient struct {
	config
}

// NewTunnelSessionClient returns a client for the TunnelSession from the given config.
func NewTunnelSessionClient(c config) *TunnelSessionClient {
	return &TunnelSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tunnelsession.Hooks(f(g(h())))`.
func (c *TunnelSessionClient) Use(hooks ...Hook) {
	c.hooks.TunnelSession = append(c.hooks.TunnelSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tunnelsession.Intercept(f(g(h())))`.
func (c *TunnelSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TunnelSession = append(c.inters.TunnelSession, interceptors...)
}

// Create returns a builder for creating a TunnelSession entity.
func (c *TunnelSessionClient) Create() *TunnelSessionCreate {
	mutation := newTunnelSessionMutation(c.config, OpCreate)
	return &TunnelSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TunnelSession entities.
func (c *TunnelSessionClient) CreateBulk(builders ...*TunnelSessionCreate) *TunnelSessionCreateBulk {
	return &TunnelSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TunnelSessionClient) MapCreateBulk(slice any, setFunc func(*TunnelSessionCreate, int)) *TunnelSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TunnelSessionCreateBulk{err: fmt.Errorf("calling to TunnelSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TunnelSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TunnelSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TunnelSession.
func (c *TunnelSessionClient) Update() *TunnelSessionUpdate {
	mutation := newTunnelSessionMutation(c.config, OpUpdate)
	return &TunnelSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TunnelSessionClient) UpdateOne(_m *TunnelSession) *TunnelSessionUpdateOne {
	mutation := newTunnelSessionMutation(c.config, OpUpdateOne, withTunnelSession(_m))
	return &TunnelSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TunnelSessionClient) UpdateOneID(id string) *TunnelSessionUpdateOne {
	mutation := newTunnelSessionMutation(c.config, OpUpdateOne, withTunnelSessionID(id))
	return &TunnelSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TunnelSession.
func (c *TunnelSessionClient) Delete() *TunnelSessionDelete {
	mutation := newTunnelSessionMutation(c.config, OpDelete)
	return &TunnelSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TunnelSessionClient) DeleteOne(_m *TunnelSession) *TunnelSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TunnelSessionClient) DeleteOneID(id string) *TunnelSessionDeleteOne {
	builder := c.Delete().Where(tunnelsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TunnelSessionDeleteOne{builder}
}

// Query returns a query builder for TunnelSession.
func (c *TunnelSessionClient) Query() *TunnelSessionQuery {
	return &TunnelSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTunnelSession},
		inters: c.Interceptors(),
	}
}

// Get returns a TunnelSession entity by its id.
func (c *TunnelSessionClient) Get(ctx context.Context, id string) (*TunnelSession, error) {
	return c.Query().Where(tunnelsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TunnelSessionClient) GetX(ctx context.Context, id string) *TunnelSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TunnelSessionClient) Hooks() []Hook {
	return c.hooks.TunnelSession
}

// Interceptors returns the client interceptors.
func (c *TunnelSessionClient) Interceptors() []Interceptor {
	return c.inters.TunnelSession
}

func (c *TunnelSessionClient) mutate(ctx context.Context, m *TunnelSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TunnelSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TunnelSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TunnelSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TunnelSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TunnelSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentLog, Assessment, Finding, TunnelSession []ent.Hook
	}
	inters struct {
		AgentLog, Assessment, Finding, TunnelSession []ent.Interceptor
	}
)
