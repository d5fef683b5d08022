// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides Vector and Matrix containers for preprocessing
// numeric datasets.
//
// # Overview
//
// The package offers two generic, immutable containers:
//   - Vector[T]: a one-dimensional run of elements
//   - Matrix[T]: a two-dimensional grid stored row-major
//
// Every operation allocates a fresh result; no container is ever modified or
// shares memory with another. Element types are float32 and float64 (and
// named types built on them).
//
// # Basic Usage
//
//	gen := tensor.NewGenerator(42)
//	v, _ := tensor.RandVector[float32](100, gen)
//
//	// Zero mean, unit variance
//	norm, _ := v.Normalize()
//
//	// Reshape into 10 samples of 10 features and standardize each feature
//	m, _ := v.Batch(10)
//	mean, _ := m.Mean(tensor.AxisCol)
//	std, _ := m.Std(tensor.AxisCol)
//	centered, _ := m.SubVector(mean)
//	scaled, _ := centered.DivVector(std)
//
// # Broadcasting
//
// Matrix operations accept three kinds of right-hand operand:
//
//	m.Add(other)      // Matrix of identical shape
//	m.AddVector(v)    // len(v) == 1 acts as a scalar; len(v) == Cols() applies per column
//	m.AddScalar(s)    // every element
//
// # Reductions
//
// Matrix reductions take an Axis. AxisAll returns a length-1 Vector;
// AxisCol returns one value per column. Statistics use the population
// standard deviation (denominator n).
//
// # Errors
//
// Operations never panic on bad input. Failures wrap one of
// ErrShapeMismatch, ErrEmptyContainer, ErrInvalidParameter,
// ErrIndexOutOfRange or ErrDivisionByZero; *ShapeError and *IndexError carry
// details for errors.As.
//
// # Randomness
//
// Random constructors take a caller-owned Generator instead of seeding
// themselves, so runs are reproducible and rapid successive calls never
// reuse a seed.
package tensor
