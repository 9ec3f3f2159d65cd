// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

func renderAboutWindow(st styles, about string) string {
	var b strings.Builder

	b.WriteString("Application: skillscope\n")
	b.WriteString("Build: ")
	b.WriteString(valueOrNA(about))

	return st.renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
