// Package main hosts the samerename CLI.
//
// Invoked without a subcommand it evaluates one directory of images with
// align_image_stack and, when the frames overlap enough, prefixes every
// candidate with a zero-padded sequence number in capture order. The
// candidates, check and config subcommands inspect that decision without
// touching any files.
package main
