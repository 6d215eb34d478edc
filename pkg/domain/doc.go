// Package domain contains the core domain types of the time service: the
// snapshot and conversion records returned by the two time operations. These
// types carry no infrastructure concerns and are shared across packages.
package domain
