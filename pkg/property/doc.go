// Package property defines typed property values. A property declares one
// of six value types; a Value holds at most one typed value in a variant
// whose alternatives are those six types.
package property
