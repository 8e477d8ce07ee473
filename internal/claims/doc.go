// Package claims models duty drawback claims and the helpers the CLI needs
// around them: conversion to filterable records, totals, typed parsing of
// filter values and watching the claims file for changes.
//
// Money fields are decimals; they stay decimals inside records so exact
// filters and totals never round.
package claims
