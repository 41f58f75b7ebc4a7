// Package outwriter has output and writer logic.
package outwriter
