// pixelpack converts an arbitrary file into a black-and-white PNG and
// back. The direction is picked from the source extension: a .png
// source is decoded into a destination directory, anything else is
// encoded into a destination image.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/tuomass/pixelpack/internal/archive"
	"github.com/tuomass/pixelpack/pkg/pixelpack"
)

const imageExtension = ".png"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var strict bool

	flagSet := pflag.NewFlagSet("pixelpack", pflag.ContinueOnError)
	flagSet.BoolVar(&strict, "strict", false, "fail on images whose recovered bits do not form whole bytes instead of zero-padding")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) != 2 {
		printHelp(flagSet)
		return fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	source, destination := args[0], args[1]

	if strings.EqualFold(filepath.Ext(source), imageExtension) {
		return decode(source, destination, strict)
	}
	return encode(source, destination)
}

func encode(source, destination string) error {
	fmt.Printf("processing: %s\n", source)
	if archive.IsArchivePath(source) {
		fmt.Println("source is already a zip archive, encoding raw bytes")
	} else {
		fmt.Println("compressing source into an in-memory zip archive")
	}

	if !strings.EqualFold(filepath.Ext(destination), imageExtension) {
		destination += imageExtension
	}

	if err := pixelpack.EncodeFile(source, destination); err != nil {
		return err
	}

	info, err := os.Stat(destination)
	if err == nil {
		fmt.Printf("image saved to %s (%d bytes)\n", destination, info.Size())
	} else {
		fmt.Printf("image saved to %s\n", destination)
	}
	return nil
}

func decode(source, destination string, strict bool) error {
	fmt.Printf("reading image: %s\n", source)

	opts := pixelpack.DefaultUnpackOptions()
	opts.Strict = strict

	names, err := pixelpack.DecodeFile(source, destination, opts)
	if err != nil {
		return err
	}

	fmt.Printf("recovered %d file(s) in %s:\n", len(names), destination)
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Println("Usage:")
	fmt.Println("  pixelpack [flags] <source> <destination>")
	fmt.Println()
	fmt.Println("Encode: pixelpack document.pdf out.png")
	fmt.Println("Decode: pixelpack out.png restored/")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Print(flagSet.FlagUsages())
}
