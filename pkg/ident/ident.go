// Package ident mints the short prefixed identifiers used across the API
// (asm_, fnd_, log_, tun_, req_).
package ident

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// Known identifier prefixes.
const (
	PrefixAssessment    = "asm"
	PrefixFinding       = "fnd"
	PrefixAgentLog      = "log"
	PrefixTunnelSession = "tun"
	PrefixProxyRequest  = "req"
)

// hexLen is the number of hex characters after the prefix.
const hexLen = 12

// New returns an identifier of the form "{prefix}_{12 hex chars}".
func New(prefix string) string {
	buf := make([]byte, hexLen/2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; if it does,
		// an unusable ID is worse than a panic.
		panic("ident: rand.Read failed: " + err.Error())
	}
	return prefix + "_" + hex.EncodeToString(buf)
}

// Prefix returns the prefix portion of an identifier, or "" when the
// identifier does not carry one.
func Prefix(id string) string {
	i := strings.IndexByte(id, '_')
	if i <= 0 {
		return ""
	}
	return id[:i]
}
