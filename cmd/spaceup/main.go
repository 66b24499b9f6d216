// Copyright 2026, Shulhan <ms@kilabit.info>. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

//
// spaceup is the command line interface to convert Spaceup markup into
// HTML or mdast JSON.
//
//	spaceup html [--standalone] [--clamp] [-o FILE] [FILE]
//	spaceup mdast [--indent] [-o FILE] [FILE]
//	spaceup check [FILE]
//
// If FILE is not set, the input is read from standard input.
// Set the environment variable DEBUG=2 to print the parser decisions.
//
package main

import (
	"log"
)

func main() {
	log.SetFlags(0)

	err := newRootCmd().Execute()
	if err != nil {
		log.Fatal("spaceup: ", err)
	}
}
