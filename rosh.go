// Package rosh provides the component model of a tournament-website builder.
// A site is stored as plain HTML, CSS and JS text; components are classified
// regions of that HTML which an editor can inspect and change through typed
// properties and styles.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package rosh
