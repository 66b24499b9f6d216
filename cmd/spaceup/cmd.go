// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shuLhan/spaceup"
	"github.com/shuLhan/spaceup/mdast"
)

type options struct {
	output     string
	standalone bool
	clamp      bool
	indent     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "spaceup",
		Short: "Convert Spaceup markup into HTML",
		Long: `spaceup convert plain text, where the structure is defined by
indentation, into HTML or into mdast tree.

Examples:
  spaceup html notes.txt
  spaceup html --standalone -o notes.html notes.txt
  spaceup mdast --indent < notes.txt
  spaceup check notes.txt`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "",
		"Write the result into file instead of standard output")

	htmlCmd := &cobra.Command{
		Use:   "html [FILE]",
		Short: "Render the markup as HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHTML(cmd, args, opts)
		},
	}
	htmlCmd.Flags().BoolVar(&opts.standalone, "standalone", false,
		"Wrap the result in a complete HTML page")
	htmlCmd.Flags().BoolVar(&opts.clamp, "clamp", false,
		"Emit headings deeper than six levels as h6")

	mdastCmd := &cobra.Command{
		Use:   "mdast [FILE]",
		Short: "Print the markup as mdast JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMdast(cmd, args, opts)
		},
	}
	mdastCmd.Flags().BoolVar(&opts.indent, "indent", false,
		"Indent the JSON output")

	checkCmd := &cobra.Command{
		Use:   "check [FILE]",
		Short: "Check that indentation use multiple of four spaces",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}

	rootCmd.AddCommand(htmlCmd, mdastCmd, checkCmd)

	return rootCmd
}

func runHTML(cmd *cobra.Command, args []string, opts *options) (err error) {
	doc, err := readDocument(cmd, args)
	if err != nil {
		return err
	}

	return writeOutput(cmd, opts.output, func(w io.Writer) error {
		htmlOpts := spaceup.HTMLOptions{
			ClampHeadings: opts.clamp,
		}
		if opts.standalone {
			return doc.ToHTMLPage(w, &spaceup.PageOptions{
				HTMLOptions: htmlOpts,
			})
		}
		err := doc.ToHTML(w, &htmlOpts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w)
		return err
	})
}

func runMdast(cmd *cobra.Command, args []string, opts *options) (err error) {
	doc, err := readDocument(cmd, args)
	if err != nil {
		return err
	}

	root := mdast.FromDocument(doc)

	return writeOutput(cmd, opts.output, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		if opts.indent {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(root)
	})
}

func runCheck(cmd *cobra.Command, args []string) (err error) {
	raw, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	err = spaceup.ValidateIndentation(string(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func readDocument(cmd *cobra.Command, args []string) (doc *spaceup.Document, err error) {
	if len(args) == 1 {
		return spaceup.Open(args[0])
	}
	raw, _, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	return spaceup.ParseBytes(raw), nil
}

//
// readInput read the content of file in args, or from standard input if
// args is empty.
//
func readInput(cmd *cobra.Command, args []string) (raw []byte, name string, err error) {
	if len(args) == 1 {
		name = args[0]
		raw, err = os.ReadFile(name)
	} else {
		name = "<stdin>"
		raw, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, name, fmt.Errorf("%s: %w", name, err)
	}
	return raw, name, nil
}

func writeOutput(cmd *cobra.Command, output string, write func(w io.Writer) error) (err error) {
	if len(output) == 0 {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("%s: %w", output, err)
	}

	err = write(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", output, err)
	}

	return f.Close()
}
