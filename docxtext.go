// Package docxtext extracts plain text from Word documents.
// A document is a zip archive; its main body part is read, markup is
// stripped, whitespace is collapsed, and a bounded prefix of the text is
// returned.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., zip/, etree/, sqlite/).
package docxtext
