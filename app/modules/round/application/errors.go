package roundservice

import (
	"errors"

	"github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/infrastructure/workbook"
)

// Errors returned by the round service. Handlers report them in the error
// envelope; none of them is retried.
var (
	// ErrUnknownRound indicates the layout has no round with the requested number.
	ErrUnknownRound = errors.New("unknown round")

	// ErrSheetNotFound indicates the workbook has no sheet for the round.
	ErrSheetNotFound = workbook.ErrSheetNotFound

	// ErrInvalidRange indicates a table range that addresses no cells.
	ErrInvalidRange = errors.New("invalid range")

	// ErrWorkbookUnavailable indicates the workbook could not be opened.
	ErrWorkbookUnavailable = errors.New("workbook unavailable")
)

// ErrNoOverallTable indicates the round sheet carries no overall table.
var ErrNoOverallTable = errors.New("round has no overall table")
