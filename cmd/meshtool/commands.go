package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/Faultbox/meshforge/internal/config"
	"github.com/Faultbox/meshforge/internal/engine/buffer"
	"github.com/Faultbox/meshforge/internal/engine/mesh"
	"github.com/Faultbox/meshforge/internal/engine/model"
	"github.com/Faultbox/meshforge/internal/engine/shapes"
	"github.com/Faultbox/meshforge/internal/export"
	"github.com/Faultbox/meshforge/internal/logger"
)

// options are the flags shared by the mesh commands.
type options struct {
	cylindrical bool
	configPath  string
	verbose     bool
}

func newFlagSet(name string) (*flag.FlagSet, *options) {
	opts := &options{}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.BoolVar(&opts.cylindrical, "cylindrical", false, "Apply cylindrical texture projection")
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	return fs, opts
}

// setup loads config and starts the logger. Tool output goes to stdout;
// the logger only reports warnings unless -v is given.
func setup(opts *options) *config.Config {
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	logger.Sync()
	os.Exit(1)
}

// loadMesh builds target into b: an .obj path is parsed directly, anything
// else is looked up in the shape catalog.
func loadMesh(target string, opts *options, cfg *config.Config, b *mesh.Builder) error {
	b.Clear()

	if strings.EqualFold(filepath.Ext(target), ".obj") {
		if _, err := model.LoadFile(target, b); err != nil {
			return err
		}
		if opts.cylindrical {
			b.ProjectCylindrical()
		}
		return b.Validate()
	}

	ok, err := shapes.FromConfig(cfg.Assets).Make(target, b)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown shape %q (see meshtool shapes)", target)
	}
	if opts.cylindrical {
		b.ProjectCylindrical()
	}
	return b.Validate()
}

func attrs(d mesh.Data) string {
	present := []string{"position"}
	if d.HasColors() {
		present = append(present, "color")
	}
	if d.HasNormals() {
		present = append(present, "normal")
	}
	if d.HasUV() {
		present = append(present, "uv")
	}
	return strings.Join(present, ", ")
}

func cmdInfo(args []string) {
	fs, opts := newFlagSet("info")
	fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool info [options] <mesh>")
		os.Exit(1)
	}
	cfg := setup(opts)
	defer logger.Sync()

	b := mesh.NewBuilder()
	if err := loadMesh(fs.Arg(0), opts, cfg, b); err != nil {
		fail(err)
	}
	d := b.Snapshot()

	fmt.Printf("Mesh:       %s\n", fs.Arg(0))
	fmt.Printf("Vertices:   %d\n", d.VertexCount)
	fmt.Printf("Triangles:  %d\n", d.VertexCount/3)
	if d.Empty() {
		return
	}
	fmt.Printf("Attributes: %s\n", attrs(d))

	lo, hi := bounds(d.Positions)
	fmt.Printf("Bounds:     (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])

	if d.HasUV() {
		seam := mesh.RepairSeam(append([]float32(nil), d.UV...))
		fmt.Printf("Seam:       %d corner(s) at u=1.0 in front-facing triangles\n", seam)
	}
}

func bounds(positions []float32) (lo, hi [3]float32) {
	for c := 0; c < 3; c++ {
		lo[c], hi[c] = positions[c], positions[c]
	}
	for i := 0; i+3 < len(positions); i += 4 {
		for c := 0; c < 3; c++ {
			lo[c] = min(lo[c], positions[i+c])
			hi[c] = max(hi[c], positions[i+c])
		}
	}
	return lo, hi
}

func cmdDump(args []string) {
	fs, opts := newFlagSet("dump")
	fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool dump [options] <mesh>")
		os.Exit(1)
	}
	cfg := setup(opts)
	defer logger.Sync()

	b := mesh.NewBuilder()
	if err := loadMesh(fs.Arg(0), opts, cfg, b); err != nil {
		fail(err)
	}
	if err := buffer.Compute(b.Snapshot()).Dump(os.Stdout, fs.Arg(0)); err != nil {
		fail(err)
	}
}

func cmdPack(args []string) {
	fs, opts := newFlagSet("pack")
	fs.Parse(args)
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool pack [options] <mesh> <out.bin>")
		os.Exit(1)
	}
	cfg := setup(opts)
	defer logger.Sync()

	b := mesh.NewBuilder()
	if err := loadMesh(fs.Arg(0), opts, cfg, b); err != nil {
		fail(err)
	}
	blk, err := buffer.Pack(b.Snapshot())
	if err != nil {
		fail(err)
	}

	out := fs.Arg(1)
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fail(err)
		}
	}
	data := append(append([]byte(nil), blk.Indices...), blk.Vertices...)
	if err := os.WriteFile(out, data, 0644); err != nil {
		fail(err)
	}

	if err := blk.Layout.Dump(os.Stdout, filepath.Base(out)); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %d bytes (vertex block at offset %d)\n", len(data), blk.Layout.IndexSize)
}

func cmdGLTF(args []string) {
	fs, opts := newFlagSet("gltf")
	fs.Parse(args)
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool gltf [options] <mesh> <out.gltf|out.glb>")
		os.Exit(1)
	}
	cfg := setup(opts)
	defer logger.Sync()

	b := mesh.NewBuilder()
	if err := loadMesh(fs.Arg(0), opts, cfg, b); err != nil {
		fail(err)
	}
	if err := exportMesh(b, fs.Arg(1), meshName(fs.Arg(0))); err != nil {
		fail(err)
	}
	fmt.Printf("Exported %s -> %s\n", fs.Arg(0), fs.Arg(1))
}

func meshName(target string) string {
	return strings.TrimSuffix(filepath.Base(target), filepath.Ext(target))
}

func exportMesh(b *mesh.Builder, out, name string) error {
	blk, err := buffer.Pack(b.Snapshot())
	if err != nil {
		return err
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return export.WriteFile(out, blk, name)
}

func cmdBatch(args []string) {
	fs, opts := newFlagSet("batch")
	fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool batch [options] <dir> [outdir]")
		os.Exit(1)
	}
	cfg := setup(opts)
	defer logger.Sync()

	outDir := cfg.Export.Dir
	if fs.NArg() > 1 {
		outDir = fs.Arg(1)
	}
	ext := "." + strings.TrimPrefix(cfg.Export.Format, ".")

	files, err := filepath.Glob(filepath.Join(fs.Arg(0), "*.obj"))
	if err != nil {
		fail(err)
	}
	upper, _ := filepath.Glob(filepath.Join(fs.Arg(0), "*.OBJ"))
	files = append(files, upper...)
	sort.Strings(files)
	if len(files) == 0 {
		fmt.Printf("No .obj files in %s\n", fs.Arg(0))
		return
	}

	// one working builder, cleared per file
	b := mesh.NewBuilder()
	bar := progressbar.Default(int64(len(files)), "exporting")
	var failed []string

	for _, path := range files {
		name := meshName(path)
		bar.Describe(name)

		err := loadMesh(path, opts, cfg, b)
		if err == nil {
			err = exportMesh(b, filepath.Join(outDir, name+ext), name)
		}
		if err != nil {
			logger.Error("export failed", zap.String("path", path), zap.Error(err))
			failed = append(failed, path)
		}
		bar.Add(1)
	}
	bar.Close()
	b.Clear()

	fmt.Printf("Exported %d of %d meshes to %s\n", len(files)-len(failed), len(files), outDir)
	if len(failed) > 0 {
		for _, f := range failed {
			fmt.Fprintf(os.Stderr, "  failed: %s\n", f)
		}
		os.Exit(1)
	}
}

func cmdShapes(args []string) {
	fs, opts := newFlagSet("shapes")
	fs.Parse(args)
	cfg := setup(opts)
	defer logger.Sync()

	byName := make(map[string]config.ShapeConfig)
	for _, s := range cfg.Assets.Shapes {
		byName[s.Name] = s
	}

	for _, name := range shapes.FromConfig(cfg.Assets).Names() {
		s, ok := byName[name]
		switch {
		case !ok:
			fmt.Printf("  %-12s (built-in)\n", name)
		case s.Cylindrical:
			fmt.Printf("  %-12s %s (cylindrical)\n", name, cfg.Assets.ShapePath(s))
		default:
			fmt.Printf("  %-12s %s\n", name, cfg.Assets.ShapePath(s))
		}
	}
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	force := fs.Bool("f", false, "Overwrite an existing file")
	fs.Parse(args)

	path := filepath.Join(config.ConfigDir(), "config.yaml")
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "Error: %s exists (use -f to overwrite)\n", path)
		os.Exit(1)
	}

	if err := config.Default().SaveTo(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
