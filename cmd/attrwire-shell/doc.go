// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command attrwire-shell bridges JSON documents into POSIX shell
// scripts. Read mode (-r) parses a JSON document and prints eval-able
// variable assignments describing it; write mode (-w) rebuilds the
// document from those variables in the process environment and prints
// it as JSON text.
//
//	eval "$(attrwire-shell -r '{"name":"lan","up":true}')"
//	echo "$JSON_VAL_name"
//	attrwire-shell -w
//
// The -p flag changes the variable namespace prefix (default JSON),
// letting a script hold several documents at once.
package main
