// Package cff plans and writes subsetted CFF1 font tables.
//
// Given an Accessor over a parsed CFF1 table and a SubsetPlan naming the
// glyphs to keep, Create computes the exact byte layout of the output table
// and Write emits it.
package cff
