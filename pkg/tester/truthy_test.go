package tester

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type flag bool

type word string

type count int

func TestTruthy(t *testing.T) {
	var nilPtr *int
	var nilSlice []int
	var nilMap map[string]int
	var nilFunc func()
	var nilErr error
	n := 0

	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"nil error", nilErr, false},
		{"nil pointer", nilPtr, false},
		{"nil slice", nilSlice, false},
		{"nil map", nilMap, false},
		{"nil func", nilFunc, false},
		{"false", false, false},
		{"true", true, true},
		{"named false", flag(false), false},
		{"named true", flag(true), true},
		{"int zero", 0, false},
		{"int one", 1, true},
		{"negative int", -3, true},
		{"int64 zero", int64(0), false},
		{"uint8 zero", uint8(0), false},
		{"uint non-zero", uint(7), true},
		{"named int zero", count(0), false},
		{"float zero", 0.0, false},
		{"negative float zero", math.Copysign(0, -1), false},
		{"float32 fraction", float32(0.5), true},
		{"NaN", math.NaN(), true},
		{"complex zero", complex(0, 0), false},
		{"empty string", "", false},
		{"string 0", "0", false},
		{"string false", "false", false},
		{"string FALSE", "FALSE", false},
		{"string off", "Off", false},
		{"string no", "no", false},
		{"padded no", " no \n", false},
		{"named off", word("OFF"), false},
		{"string 1", "1", true},
		{"string true", "true", true},
		{"string yes", "yes", true},
		{"string 0.0", "0.0", true},
		{"string with space", "not false", true},
		{"arbitrary string", "banana", true},
		{"empty slice", []int{}, true},
		{"pointer to zero", &n, true},
		{"struct", struct{}{}, true},
		{"error", errors.New("boom"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.in))
		})
	}
}
