// Package model defines the menu-item record, its closed category set,
// and the full-record validation rules applied before any write reaches
// the database.
package model
