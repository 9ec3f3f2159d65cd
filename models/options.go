// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// SecurityQuestions is the fixed list offered at sign-up. The first entry is
// the default.
var SecurityQuestions = []string{
	"What was the name of your first pet?",
	"What is your mother's maiden name?",
	"What was the name of your first school?",
	"In which city were you born?",
	"What is your favourite book?",
}

// Degrees lists the degree options shown on the sign-up and profile screens.
var Degrees = []string{
	"B.Tech",
	"B.E.",
	"B.Sc",
	"BCA",
	"B.Com",
	"BBA",
	"M.Tech",
	"M.Sc",
	"MCA",
	"MBA",
	"Ph.D",
	"Other",
}

// Languages lists the supported interface languages. The first entry is the
// default.
var Languages = []string{
	"English",
	"Hindi",
	"Marathi",
	"Tamil",
	"Telugu",
	"Bengali",
}

// Theme is the colour scheme of the client.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// IsSecurityQuestion reports whether q is one of [SecurityQuestions].
func IsSecurityQuestion(q string) bool {
	return slices.Contains(SecurityQuestions, q)
}

// IsLanguage reports whether lang is one of [Languages].
func IsLanguage(lang string) bool {
	return slices.Contains(Languages, lang)
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
