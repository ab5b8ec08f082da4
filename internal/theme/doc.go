// Package theme selects the widget color palette.
// The default "system" scheme follows the local hour of day: a dark palette
// from 21:00 until 06:00 and a light palette otherwise.
package theme
