package idgen

import "github.com/google/uuid"

// NewFunc returns a run identifier. Tests may replace it.
var NewFunc = func() string { return uuid.New().String() }

func New() string { return NewFunc() }
