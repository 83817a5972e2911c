package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// navOrder is the position of each command's page in the docs sidebar
var navOrder = map[string]int{
	"oeis_seq":    0,
	"oeis_terms":  1,
	"oeis_find":   2,
	"oeis_search": 3,
	"oeis_docs":   4,
}

// docsCmd is for writing Markdown documentation of every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for each command",
	Args:   cobra.MaximumNArgs(1),
	RunE:   docsExec,
	Hidden: true,
	Long: `Write a Markdown page per command to dir (default ./docs), with the
YAML headings the just-the-docs Jekyll theme needs for navigation.`,
}

func init() {
	RootCmd.AddCommand(docsCmd)
}

func docsExec(cmd *cobra.Command, args []string) error {
	dir := "docs"
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to make docs directory %s: %v", dir, err)
	}
	RootCmd.DisableAutoGenTag = true
	return doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler)
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	base := docBase(filename)
	if base == RootCmd.Name() {
		return fmt.Sprintf(rootDoc, base, 0)
	}

	title := strings.TrimPrefix(base, RootCmd.Name()+"_")
	return fmt.Sprintf(childDoc, title, RootCmd.Name(), navOrder[base])
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	base := docBase(filename)
	if base == RootCmd.Name() {
		return "/"
	}
	return base
}

// docBase is the file name without its directory or extension
func docBase(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}
