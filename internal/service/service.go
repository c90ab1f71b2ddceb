// Package service contains the business logic.
//
// It sits between the handler and repository layers: it validates
// candidate records, builds listing filters, merges partial updates, and
// maps store failures into the application error taxonomy.
package service
