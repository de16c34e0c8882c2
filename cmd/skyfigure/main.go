// go-skyfigure
// Copyright (c) 2025 The go-skyfigure Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-skyfigure.
//
// go-skyfigure is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-skyfigure is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-skyfigure; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

// Command skyfigure inspects and edits toy tag images on disk, and can read
// or write a physical tag through a connected reader.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	skyfigure "github.com/skyfigure-project/go-skyfigure"
	"github.com/skyfigure-project/go-skyfigure/nfc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "create":
		runCreate(os.Args[2:])
	case "info":
		runInfo(os.Args[2:])
	case "set-gold":
		runSetGold(os.Args[2:])
	case "read-nfc":
		runReadNFC(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: skyfigure <create|info|set-gold|read-nfc> [flags]")
}

func runCreate(args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	toyID := fs.Uint("toy", 0, "16-bit toy ID")
	variantID := fs.Uint("variant", 0, "16-bit variant ID")
	out := fs.String("out", "", "output file path")
	fs.Parse(args)

	if *out == "" {
		log.Fatal("skyfigure: -out is required")
	}

	fig, err := skyfigure.New(uint16(*toyID), uint16(*variantID))
	if err != nil {
		log.Fatalf("skyfigure: create: %v", err)
	}
	if err := fig.SaveToFile(*out); err != nil {
		log.Fatalf("skyfigure: save: %v", err)
	}
	fmt.Println(fig.Summary())
}

func runInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	in := fs.String("in", "", "input file path")
	fs.Parse(args)

	if *in == "" {
		log.Fatal("skyfigure: -in is required")
	}

	fig, err := skyfigure.FromFile(*in)
	if err != nil {
		log.Fatalf("skyfigure: load: %v", err)
	}
	fmt.Println(fig.Summary())
}

func runSetGold(args []string) {
	fs := flag.NewFlagSet("set-gold", flag.ExitOnError)
	in := fs.String("in", "", "input file path")
	out := fs.String("out", "", "output file path (defaults to -in)")
	gold := fs.Uint("gold", 0, "gold amount")
	fs.Parse(args)

	if *in == "" {
		log.Fatal("skyfigure: -in is required")
	}
	if *out == "" {
		*out = *in
	}

	fig, err := skyfigure.FromFile(*in)
	if err != nil {
		log.Fatalf("skyfigure: load: %v", err)
	}
	ch, err := fig.Character()
	if err != nil {
		log.Fatalf("skyfigure: not a character: %v", err)
	}
	ch.SetGold(uint16(*gold))
	if err := fig.SaveToFile(*out); err != nil {
		log.Fatalf("skyfigure: save: %v", err)
	}
}

func runReadNFC(args []string) {
	fs := flag.NewFlagSet("read-nfc", flag.ExitOnError)
	port := fs.String("port", "", "serial port (e.g. /dev/ttyUSB0, COM3)")
	baud := fs.Int("baud", 115200, "serial baud rate")
	out := fs.String("out", "", "output file path")
	fs.Parse(args)

	if *port == "" || *out == "" {
		log.Fatal("skyfigure: -port and -out are required")
	}

	driver := nfc.NewSerialDriver(*port, *baud)
	ctx := context.Background()
	if err := driver.Connect(ctx); err != nil {
		log.Fatalf("skyfigure: connect: %v", err)
	}
	defer driver.Close()

	fig, err := nfc.ReadFigure(ctx, driver, skyfigure.DefaultRetryPolicy)
	if err != nil {
		log.Fatalf("skyfigure: read tag: %v", err)
	}
	if err := fig.SaveToFile(*out); err != nil {
		log.Fatalf("skyfigure: save: %v", err)
	}
	fmt.Println(fig.Summary())
}
