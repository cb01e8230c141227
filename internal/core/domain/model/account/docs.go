// Package account provides the identity concepts the order lifecycle depends
// on: the Role of an authenticated user (consumer or producer) and the Actor
// value object that carries an authenticated identity into every lifecycle
// operation.
//
// There is no implicit "current user" in the domain layer. Whoever invokes a
// lifecycle operation must pass an explicitly constructed Actor, which makes
// authorization decisions testable in isolation.
package account
