// Package fop provides filter/order/pagination support shared by
// repositories and bridges.
package fop

import (
	"errors"
	"fmt"
	"strconv"
)

// Set of error variables callers can test to learn which input failed.
var (
	ErrInvalidLimit  = errors.New("invalid limit")
	ErrInvalidOffset = errors.New("invalid offset")
)

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// By represents a field and direction used for ordering.
type By struct {
	Field     string
	Direction string
}

// NewBy constructs a By value with a field and direction.
func NewBy(field, direction string) By {
	return By{
		Field:     field,
		Direction: direction,
	}
}

// PageOffset represents requested limit/offset paging.
type PageOffset struct {
	Limit  int
	Offset int
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ParsePageOffset converts raw limit/offset query strings into a bounded
// page. Absent values fall back to limit 10, offset 0. Non-numeric or
// negative values are rejected rather than silently passed through to the
// query engine.
func ParsePageOffset(pageLimit string, pageOffset string) (PageOffset, error) {
	limit := defaultLimit

	if pageLimit != "" {
		var err error
		limit, err = strconv.Atoi(pageLimit)
		if err != nil {
			return PageOffset{}, fmt.Errorf("%w: conversion: %s", ErrInvalidLimit, err)
		}
	}

	if limit <= 0 {
		return PageOffset{}, fmt.Errorf("%w: value too small, must be larger than 0", ErrInvalidLimit)
	}

	if limit > maxLimit {
		return PageOffset{}, fmt.Errorf("%w: value too large, must be at most %d", ErrInvalidLimit, maxLimit)
	}

	offset := 0
	if pageOffset != "" {
		var err error
		offset, err = strconv.Atoi(pageOffset)
		if err != nil {
			return PageOffset{}, fmt.Errorf("%w: conversion: %s", ErrInvalidOffset, err)
		}
	}

	if offset < 0 {
		return PageOffset{}, fmt.Errorf("%w: value must not be negative", ErrInvalidOffset)
	}

	return PageOffset{
		Limit:  limit,
		Offset: offset,
	}, nil
}
