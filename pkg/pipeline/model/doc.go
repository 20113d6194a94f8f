// Package model provides the data structures shared by the pipeline package and its options.
// It defines how a step is described to options and the hooks an option can implement.
package model
