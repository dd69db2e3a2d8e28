// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package decasify converts text to lower, upper, title and sentence case
// using locale aware case mappings and the title case rules of a style
// guide.
//
// Locales change the case mappings: in Turkish "i" upper cases to "İ" and
// "I" lower cases to "ı". Style guides change which words of a title are
// capitalized:
//
//	decasify.Titlecase("the lord of the rings", decasify.English, decasify.ChicagoManualOfStyle)
//	// "The Lord of the Rings"
//
// Whitespace and punctuation are always copied unchanged.
package decasify

//go:generate go run gen.go

// BUG(cvieth): Contextual case mappings other than the Turkish dotted I (the
// Lithuanian dot above and the Greek final sigma) follow the root locale.
