// Package service contains the business logic.
//
// It sits between the handler layer and the pure form validators:
// handlers hand it decoded payloads, it evaluates them and records
// what happened.
package service
