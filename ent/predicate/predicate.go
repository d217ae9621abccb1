// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentLog is the predicate function for agentlog builders.
type AgentLog func(*sql.Selector)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)

// Finding is the predicate function for finding builders.
type Finding func(*sql.Selector)

// TunnelSession is the predicate function for tunnelsession builders.
type TunnelSession func(*sql.Selector)
