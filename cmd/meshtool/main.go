// meshtool is a CLI utility for inspecting, packing and exporting OBJ meshes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "dump":
		cmdDump(args)
	case "pack":
		cmdPack(args)
	case "gltf", "export":
		cmdGLTF(args)
	case "batch":
		cmdBatch(args)
	case "shapes", "ls":
		cmdShapes(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - OBJ mesh utility

Usage:
  meshtool <command> [options]

Commands:
  info <mesh>                  Show mesh statistics
  dump <mesh>                  Show the GPU buffer layout
  pack <mesh> <out.bin>        Write index block then vertex block
  gltf <mesh> <out.gltf|.glb>  Export as glTF 2.0
  batch <dir> [outdir]         Export every .obj in dir
  shapes                       List catalog shapes
  config [path]                Write the default config

<mesh> is an .obj path or a shape name from the catalog.

Options (mesh commands):
  -cylindrical   Replace texture coordinates with a cylindrical projection
  -config path   Config file for the shape catalog
  -v             Verbose logging

Examples:
  meshtool info model/Teapot.obj
  meshtool dump -cylindrical model/Cup.obj
  meshtool gltf cup cup.glb
  meshtool batch model export`)
}
