// Package command implements the geofun sub-commands.
package command

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/navkit/geofun"
	"github.com/navkit/geofun/internal/config"
	"github.com/navkit/geofun/internal/log"
)

// ErrUsage is returned for a missing or unknown command and for bad
// command arguments.
var ErrUsage = errors.New("usage")

// Env is what a command runs against.
type Env struct {
	Stdout io.Writer
	// Format is "text", "json" or "msgpack".
	Format string
	// Segments is the default leg count of split.
	Segments int
	Model    *geofun.Model
	Log      *log.Logger
}

var usages = map[string]string{
	"version": "version",
	"parse":   "parse <position>",
	"angle":   "angle <degrees>",
	"inverse": "inverse [-rhumb] <from> <to>",
	"direct":  "direct [-rhumb] <from> <azimuth> <distance>",
	"split":   "split [-rhumb] <from> <to> [legs]",
}

var commands = map[string]func(env Env, args []string) (result, error){
	"version": runVersion,
	"parse":   runParse,
	"angle":   runAngle,
	"inverse": runInverse,
	"direct":  runDirect,
	"split":   runSplit,
}

func usageError(name string) error {
	return fmt.Errorf("%s: %w", usages[name], ErrUsage)
}

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	names := make([]string, 0, len(usages))
	for name := range usages {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", usages[name])
	}
}

// Run runs the command named by args[0] with the remaining arguments and
// writes its result to env.Stdout in env.Format.
func Run(args []string, env Env) error {
	if len(args) == 0 {
		return fmt.Errorf("no command: %w", ErrUsage)
	}
	run, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%s: unknown command: %w", args[0], ErrUsage)
	}
	if env.Format == "" {
		env.Format = "text"
	}
	if err := config.CheckFormat(env.Format); err != nil {
		return err
	}
	if env.Model == nil {
		env.Model = geofun.NewModel(geofun.WGS84)
	}
	if env.Segments == 0 {
		env.Segments = config.Default().Split.Segments
	}
	env.Log = env.Log.With(slog.String("command", args[0]))

	env.Log.Debug("run", slog.Any("args", args[1:]))
	r, err := run(env, args[1:])
	if err != nil {
		env.Log.Warn("failed", slog.String("error", err.Error()))
		return err
	}
	return write(env, r)
}

type result interface {
	writeText(w io.Writer) error
}

func write(env Env, r result) error {
	switch env.Format {
	case "json":
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "msgpack":
		return msgpack.NewEncoder(env.Stdout).Encode(r)
	default:
		return r.writeText(env.Stdout)
	}
}

// parseFlags handles the -rhumb flag shared by the track commands and
// checks the number of positional arguments.
func parseFlags(name string, args []string, min, max int) (rhumb bool, rest []string, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&rhumb, "rhumb", false, "follow the rhumb line instead of the geodesic")
	if err := fs.Parse(args); err != nil {
		return false, nil, fmt.Errorf("%s: %v: %w", name, err, ErrUsage)
	}
	rest = fs.Args()
	if len(rest) < min || len(rest) > max {
		return false, nil, usageError(name)
	}
	return rhumb, rest, nil
}

func parseNumber(what, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", what, s, geofun.ErrParse)
	}
	return f, nil
}

func method(rhumb bool) string {
	if rhumb {
		return "rhumb"
	}
	return "geodesic"
}

type versionResult struct {
	Version string `json:"version" msgpack:"version"`
}

func (r versionResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "geofun %s\n", r.Version)
	return err
}

func runVersion(env Env, args []string) (result, error) {
	if len(args) != 0 {
		return nil, usageError("version")
	}
	return versionResult{Version: geofun.Version()}, nil
}

type parseResult struct {
	Position geofun.Position `json:"position" msgpack:"position"`
}

func (r parseResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Position)
	return err
}

func runParse(env Env, args []string) (result, error) {
	if len(args) == 0 {
		return nil, usageError("parse")
	}
	var (
		p   geofun.Position
		err error
	)
	if len(args) == 2 {
		p, err = geofun.ParsePositionPair(args[0], args[1])
	} else {
		p, err = geofun.ParsePosition(strings.Join(args, " "))
	}
	if err != nil {
		return nil, err
	}
	return parseResult{Position: p}, nil
}

type angleResult struct {
	Mod    float64 `json:"mod" msgpack:"mod"`
	Signed float64 `json:"signed" msgpack:"signed"`
}

func (r angleResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%g %g\n", r.Mod, r.Signed)
	return err
}

func runAngle(env Env, args []string) (result, error) {
	if len(args) != 1 {
		return nil, usageError("angle")
	}
	deg, err := parseNumber("angle", args[0])
	if err != nil {
		return nil, err
	}
	return angleResult{Mod: geofun.AngleMod(deg), Signed: geofun.AngleModSigned(deg)}, nil
}

type trackResult struct {
	Method string          `json:"method" msgpack:"method"`
	From   geofun.Position `json:"from" msgpack:"from"`
	To     geofun.Position `json:"to" msgpack:"to"`
	Vector geofun.Vector   `json:"vector" msgpack:"vector"`
}

func (r trackResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s from %v to %v\nazimuth %.8f\ndistance %.3f\n",
		r.Method, r.From, r.To, r.Vector.Azimuth(), r.Vector.Length())
	return err
}

// track returns the vector from a to b.
func track(env Env, rhumb bool, from, to geofun.Position) (geofun.Vector, error) {
	if rhumb {
		return env.Model.Div(to, from)
	}
	return env.Model.Sub(to, from)
}

func runInverse(env Env, args []string) (result, error) {
	rhumb, args, err := parseFlags("inverse", args, 2, 2)
	if err != nil {
		return nil, err
	}
	from, err := geofun.ParsePosition(args[0])
	if err != nil {
		return nil, err
	}
	to, err := geofun.ParsePosition(args[1])
	if err != nil {
		return nil, err
	}
	v, err := track(env, rhumb, from, to)
	if err != nil {
		return nil, err
	}
	env.Log.Debugf("%s inverse %#v", method(rhumb), v)
	return trackResult{Method: method(rhumb), From: from, To: to, Vector: v}, nil
}

func runDirect(env Env, args []string) (result, error) {
	rhumb, args, err := parseFlags("direct", args, 3, 3)
	if err != nil {
		return nil, err
	}
	from, err := geofun.ParsePosition(args[0])
	if err != nil {
		return nil, err
	}
	azimuth, err := parseNumber("azimuth", args[1])
	if err != nil {
		return nil, err
	}
	distance, err := parseNumber("distance", args[2])
	if err != nil {
		return nil, err
	}
	v := geofun.NewVector(azimuth, distance)
	var to geofun.Position
	if rhumb {
		to, err = env.Model.Mul(from, v)
	} else {
		to, err = env.Model.Add(from, v)
	}
	if err != nil {
		return nil, err
	}
	return trackResult{Method: method(rhumb), From: from, To: to, Vector: v}, nil
}

type splitResult struct {
	Method string            `json:"method" msgpack:"method"`
	Vector geofun.Vector     `json:"vector" msgpack:"vector"`
	Points []geofun.Position `json:"points" msgpack:"points"`
}

func (r splitResult) writeText(w io.Writer) error {
	for _, p := range r.Points {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

func runSplit(env Env, args []string) (result, error) {
	rhumb, args, err := parseFlags("split", args, 2, 3)
	if err != nil {
		return nil, err
	}
	from, err := geofun.ParsePosition(args[0])
	if err != nil {
		return nil, err
	}
	to, err := geofun.ParsePosition(args[1])
	if err != nil {
		return nil, err
	}
	legs := env.Segments
	if len(args) == 3 {
		legs, err = strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("legs %q: %w", args[2], geofun.ErrParse)
		}
	}

	v, err := track(env, rhumb, from, to)
	if err != nil {
		return nil, err
	}
	var points []geofun.Position
	if rhumb {
		points, err = env.Model.SplitLoxo(v, from, legs)
	} else {
		points, err = env.Model.SplitOrtho(v, from, legs)
	}
	if err != nil {
		return nil, err
	}
	env.Log.Info("split", slog.String("method", method(rhumb)), slog.Int("legs", legs))
	return splitResult{Method: method(rhumb), Vector: v, Points: points}, nil
}
