// Package config loads the YAML configuration of the tocmarks command.
//
// A config file only needs the keys it changes; everything else keeps the
// defaults, which reproduce the behavior of pdftohtml's single-file export:
//
//	document:
//	  title: "Programming in Ada 2012"
//	  author: "John Barnes"
//	  date: auto
//	pages:
//	  sectionOffset: 0
//
// Unknown keys are rejected.
package config
