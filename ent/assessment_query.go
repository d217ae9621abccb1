// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vibecheck/vibecheck/ent/agentlog"
	"github.com/vibecheck/vibecheck/ent/assessment"
	"github.com/vibecheck/vibecheck/ent/finding"
	"github.com/vibecheck/vibecheck/ent/predicate"
)

// AssessmentQuery is the builder for querying Assessment entities.
type AssessmentQuery struct {
	config
	ctx           *QueryContext
	order         []assessment.OrderOption
	inters        []Interceptor
	predicates    []predicate.Assessment
	withFindings  *FindingQuery
	withAgentLogs *AgentLogQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AssessmentQuery builder.
func (_q *AssessmentQuery) Where(ps ...predicate.Assessment) *AssessmentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AssessmentQuery) Limit(limit int) *AssessmentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AssessmentQuery) Offset(offset int) *AssessmentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AssessmentQuery) Unique(unique bool) *AssessmentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AssessmentQuery) Order(o ...assessment.OrderOption) *AssessmentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFindings chains the current query on the "findings" edge.
func (_q *AssessmentQuery) QueryFindings() *FindingQuery {
	query := (&FindingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assessment.Table, assessment.FieldID, selector),
			sqlgraph.To(finding.Table, finding.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assessment.FindingsTable, assessment.FindingsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAgentLogs chains the current query on the "agent_logs" edge.
func (_q *AssessmentQuery) QueryAgentLogs() *AgentLogQuery {
	query := (&AgentLogClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assessment.Table, assessment.FieldID, selector),
			sqlgraph.To(agentlog.Table, agentlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assessment.AgentLogsTable, assessment.AgentLogsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Assessment entity from the query.
// Returns a *NotFoundError when no Assessment was found.
func (_q *AssessmentQuery) First(ctx context.Context) (*Assessment, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{assessment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AssessmentQuery) FirstX(ctx context.Context) *Assessment {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Assessment ID from the query.
// Returns a *NotFoundError when no Assessment ID was found.
func (_q *AssessmentQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{assessment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AssessmentQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Assessment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Assessment entity is found.
// Returns a *NotFoundError when no Assessment entities are found.
func (_q *AssessmentQuery) Only(ctx context.Context) (*Assessment, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{assessment.Label}
	default:
		return nil, &NotSingularError{assessment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AssessmentQuery) OnlyX(ctx context.Context) *Assessment {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Assessment ID in the query.
// Returns a *NotSingularError when more than one Assessment ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AssessmentQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{assessment.Label}
	default:
		err = &NotSingularError{assessment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AssessmentQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Assessments.
func (_q *AssessmentQuery) All(ctx context.Context) ([]*Assessment, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Assessment, *AssessmentQuery]()
	return withInterceptors[[]*Assessment](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AssessmentQuery) AllX(ctx context.Context) []*Assessment {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Assessment IDs.
func (_q *AssessmentQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(assessment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AssessmentQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AssessmentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AssessmentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AssessmentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AssessmentQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AssessmentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AssessmentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AssessmentQuery) Clone() *AssessmentQuery {
	if _q == nil {
		return nil
	}
	return &AssessmentQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]assessment.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.Assessment{}, _q.predicates...),
		withFindings:  _q.withFindings.Clone(),
		withAgentLogs: _q.withAgentLogs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFindings tells the query-builder to eager-load the nodes that are connected to
// the "findings" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssessmentQuery) WithFindings(opts ...func(*FindingQuery)) *AssessmentQuery {
	query := (&FindingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFindings = query
	return _q
}

// WithAgentLogs tells the query-builder to eager-load the nodes that are connected to
// the "agent_logs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssessmentQuery) WithAgentLogs(opts ...func(*AgentLogQuery)) *AssessmentQuery {
	query := (&AgentLogClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgentLogs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Mode assessment.Mode `json:"mode,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Assessment.Query().
//		GroupBy(assessment.FieldMode).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AssessmentQuery) GroupBy(field string, fields ...string) *AssessmentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AssessmentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = assessment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Mode assessment.Mode `json:"mode,omitempty"`
//	}
//
//	client.Assessment.Query().
//		Select(assessment.FieldMode).
//		Scan(ctx, &v)
func (_q *AssessmentQuery) Select(fields ...string) *AssessmentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AssessmentSelect{AssessmentQuery: _q}
	sbuild.label = assessment.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AssessmentSelect configured with the given aggregations.
func (_q *AssessmentQuery) Aggregate(fns ...AggregateFunc) *AssessmentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AssessmentQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !assessment.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AssessmentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Assessment, error) {
	var (
		nodes       = []*Assessment{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withFindings != nil,
			_q.withAgentLogs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Assessment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Assessment{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withFindings; query != nil {
		if err := _q.loadFindings(ctx, query, nodes,
			func(n *Assessment) { n.Edges.Findings = []*Finding{} },
			func(n *Assessment, e *Finding) { n.Edges.Findings = append(n.Edges.Findings, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAgentLogs; query != nil {
		if err := _q.loadAgentLogs(ctx, query, nodes,
			func(n *Assessment) { n.Edges.AgentLogs = []*AgentLog{} },
			func(n *Assessment, e *AgentLog) { n.Edges.AgentLogs = append(n.Edges.AgentLogs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AssessmentQuery) loadFindings(ctx context.Context, query *FindingQuery, nodes []*Assessment, init func(*Assessment), assign func(*Assessment, *Finding)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Assessment)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(finding.FieldAssessmentID)
	}
	query.Where(predicate.Finding(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(assessment.FindingsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AssessmentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "assessment_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AssessmentQuery) loadAgentLogs(ctx context.Context, query *AgentLogQuery, nodes []*Assessment, init func(*Assessment), assign func(*Assessment, *AgentLog)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Assessment)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentlog.FieldAssessmentID)
	}
	query.Where(predicate.AgentLog(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(assessment.AgentLogsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AssessmentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "assessment_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AssessmentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AssessmentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for i := range fields {
			if fields[i] != assessment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AssessmentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(assessment.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = assessment.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AssessmentGroupBy is the group-by builder for Assessment entities.
type AssessmentGroupBy struct {
	selector
	build *AssessmentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AssessmentGroupBy) Aggregate(fns ...AggregateFunc) *AssessmentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AssessmentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssessmentQuery, *AssessmentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AssessmentGroupBy) sqlScan(ctx context.Context, root *AssessmentQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AssessmentSelect is the builder for selecting fields of Assessment entities.
type AssessmentSelect struct {
	*AssessmentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AssessmentSelect) Aggregate(fns ...AggregateFunc) *AssessmentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AssessmentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssessmentQuery, *AssessmentSelect](ctx, _s.AssessmentQuery, _s, _s.inters, v)
}

func (_s *AssessmentSelect) sqlScan(ctx context.Context, root *AssessmentQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
