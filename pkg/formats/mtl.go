// Package formats reads the parts of Wavefront OBJ and MTL files that the
// g3n OBJ decoder leaves out: every mtllib library and the texture map
// statements with their options.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MTL format errors.
var (
	ErrMTLNoMaterial   = errors.New("MTL statement before newmtl")
	ErrInvalidMTLValue = errors.New("invalid MTL value")
)

// TextureMaps holds the texture files referenced by one material.
// Paths use forward slashes and are relative to the MTL file.
type TextureMaps struct {
	Diffuse  string
	Specular string
}

// mapOptionArgs is the maximum argument count of each texture map option.
var mapOptionArgs = map[string]int{
	"-blendu":  1,
	"-blendv":  1,
	"-bm":      1,
	"-boost":   1,
	"-cc":      1,
	"-clamp":   1,
	"-imfchan": 1,
	"-mm":      2,
	"-o":       3,
	"-s":       3,
	"-t":       3,
	"-texres":  1,
	"-type":    1,
}

// MaterialLibs returns the library names of every mtllib statement in OBJ data.
func MaterialLibs(obj []byte) []string {
	var libs []string
	scanner := bufio.NewScanner(bytes.NewReader(obj))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 1 && fields[0] == "mtllib" {
			libs = append(libs, fields[1:]...)
		}
	}
	return libs
}

// ParseTextureMaps reads the map_Kd and map_Ks statements of MTL data, keyed by material name.
// Any material statement before the first newmtl is an error.
func ParseTextureMaps(data []byte) (map[string]TextureMaps, error) {
	maps := make(map[string]TextureMaps)
	current := ""
	seen := false

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		key, args := fields[0], fields[1:]

		if key == "newmtl" {
			// Names are single tokens, as usemtl references them.
			if len(args) == 0 {
				return nil, fmt.Errorf("line %d: %w: unnamed material", lineNo, ErrInvalidMTLValue)
			}
			current = args[0]
			seen = true
			if _, ok := maps[current]; !ok {
				maps[current] = TextureMaps{}
			}
			continue
		}
		if !seen {
			return nil, fmt.Errorf("line %d: %w: %s", lineNo, ErrMTLNoMaterial, key)
		}

		switch key {
		case "map_Kd", "map_Ks":
			file, err := mapPath(args)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", lineNo, key, err)
			}
			m := maps[current]
			if key == "map_Kd" {
				m.Diffuse = file
			} else {
				m.Specular = file
			}
			maps[current] = m
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading MTL: %w", err)
	}
	return maps, nil
}

// mapPath skips the leading options of a map statement and returns the file
// name, which may contain spaces.
func mapPath(args []string) (string, error) {
	i := 0
	for i < len(args) {
		n, ok := mapOptionArgs[args[i]]
		if !ok {
			break
		}
		i++
		// Options with a variable argument count take numbers only.
		for k := 0; k < n && i < len(args); k++ {
			if k > 0 {
				if _, err := strconv.ParseFloat(args[i], 32); err != nil {
					break
				}
			}
			i++
		}
	}
	if i >= len(args) {
		return "", fmt.Errorf("%w: missing texture path", ErrInvalidMTLValue)
	}
	return strings.ReplaceAll(strings.Join(args[i:], " "), "\\", "/"), nil
}
