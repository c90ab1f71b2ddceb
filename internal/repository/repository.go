// Package repository handles all interactions with the database.
//
// It contains the SQL for the menu_items table and methods to fetch,
// persist, or remove rows, abstracting SQL away from the service layer.
// All query text is static; every user-supplied value is bound as a
// positional parameter, never concatenated.
package repository
