package services

import "errors"

var (
	ErrProgramNotFound  = errors.New("weekly program not found")
	ErrDishNotFound     = errors.New("dish not found")
	ErrInvalidDateRange = errors.New("start date is after end date")
)
