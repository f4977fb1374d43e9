package geofun

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// coordinate is one scanned latitude or longitude.
type coordinate struct {
	value float64
	// hemi is 0 or one of 'N', 'S', 'E', 'W'.
	hemi byte
	// integral is set for a bare integer literal: no decimals, symbols or
	// hemisphere letter.
	integral bool
}

func isLatitudeHemi(h byte) bool  { return h == 'N' || h == 'S' }
func isLongitudeHemi(h byte) bool { return h == 'E' || h == 'W' }

// unitIndex returns 0, 1 or 2 for degree, minute and second symbols and
// -1 for anything else.
func unitIndex(r rune) int {
	switch r {
	case '°', 'º':
		return 0
	case '\'', '′', '’':
		return 1
	case '"', '″', '”':
		return 2
	}
	return -1
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanCoordinate parses a single coordinate: an optional sign, an optional
// hemisphere letter before or after the numbers, and up to three numbers
// for degrees, minutes and seconds, each optionally followed by its unit
// symbol.
func scanCoordinate(s string) (coordinate, error) {
	fail := func(format string, args ...any) (coordinate, error) {
		return coordinate{}, fmt.Errorf("%q: %s: %w", s, fmt.Sprintf(format, args...), ErrParse)
	}

	var (
		fields     [3]float64
		marked     [3]bool
		count      int
		hemi       byte
		hemiSuffix bool
		decimals   bool
		symbols    bool
	)
	rs := []rune(s)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case isDigit(r) || r == '.' || r == '+' || r == '-':
			j := i
			if r == '+' || r == '-' {
				if count > 0 {
					return fail("sign on a minutes or seconds value")
				}
				j++
			}
			for j < len(rs) && (isDigit(rs[j]) || rs[j] == '.') {
				j++
			}
			lit := string(rs[i:j])
			if count == len(fields) {
				return fail("more than three numbers")
			}
			if hemiSuffix {
				return fail("number after hemisphere %c", hemi)
			}
			f, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return fail("bad number %q", lit)
			}
			if strings.ContainsRune(lit, '.') {
				decimals = true
			}
			fields[count] = f
			count++
			i = j

		case unitIndex(r) >= 0:
			k := unitIndex(r)
			if count == 0 {
				return fail("symbol %c without a number", r)
			}
			if marked[count-1] || k != count-1 {
				return fail("unexpected symbol %c", r)
			}
			marked[k] = true
			symbols = true
			i++

		default:
			h := byte(unicode.ToUpper(r))
			if r > unicode.MaxASCII || !(isLatitudeHemi(h) || isLongitudeHemi(h)) {
				return fail("unexpected character %q", r)
			}
			if hemi != 0 {
				return fail("second hemisphere %c", h)
			}
			hemi = h
			hemiSuffix = count > 0
			i++
		}
	}

	if count == 0 {
		return fail("no number")
	}
	for k := 1; k < count; k++ {
		if fields[k] >= 60 {
			return fail("%v out of range", fields[k])
		}
	}

	// The sign of the degrees, -0 included, applies to the whole value.
	// A S or W hemisphere negates on top of it, so "-10S" is +10.
	value := math.Abs(fields[0]) + fields[1]/60 + fields[2]/3600
	if math.Signbit(fields[0]) {
		value = -value
	}
	if hemi == 'S' || hemi == 'W' {
		value = -value
	}
	return coordinate{
		value:    value,
		hemi:     hemi,
		integral: count == 1 && !decimals && !symbols && hemi == 0,
	}, nil
}

// ParseLatitude parses a latitude in decimal degrees ("52.1"), with a
// hemisphere letter ("12.0N", "S 0.5") or in degrees, minutes and seconds
// ("00°30'00\"S", "-89°30.5"). An E or W hemisphere is an error.
func ParseLatitude(s string) (float64, error) {
	c, err := scanCoordinate(s)
	if err != nil {
		return 0, err
	}
	if isLongitudeHemi(c.hemi) {
		return 0, fmt.Errorf("%q: longitude given for a latitude: %w", s, ErrParse)
	}
	return c.value, nil
}

// ParseLongitude is ParseLatitude for longitudes; N or S is an error.
func ParseLongitude(s string) (float64, error) {
	c, err := scanCoordinate(s)
	if err != nil {
		return 0, err
	}
	if isLatitudeHemi(c.hemi) {
		return 0, fmt.Errorf("%q: latitude given for a longitude: %w", s, ErrParse)
	}
	return c.value, nil
}

// ParsePositionPair parses a latitude and a longitude string. When the
// hemisphere letters show the two are the other way around they are
// swapped. If both are bare integers they are taken as arc-seconds.
func ParsePositionPair(latitude, longitude string) (Position, error) {
	a, err := scanCoordinate(latitude)
	if err != nil {
		return Position{}, err
	}
	b, err := scanCoordinate(longitude)
	if err != nil {
		return Position{}, err
	}
	return positionFromCoordinates(a, b, latitude+" "+longitude)
}

func positionFromCoordinates(a, b coordinate, input string) (Position, error) {
	if isLongitudeHemi(a.hemi) || isLatitudeHemi(b.hemi) {
		a, b = b, a
	}
	if isLongitudeHemi(a.hemi) || isLatitudeHemi(b.hemi) {
		return Position{}, fmt.Errorf("%q: two latitudes or two longitudes: %w", input, ErrParse)
	}
	if a.integral && b.integral {
		return fromArcSeconds(a.value, b.value), nil
	}
	return NewPosition(a.value, b.value), nil
}

// ParsePosition parses a combined "latitude longitude" string, e.g.
// "52.1 4.1", "4.1W 12.0N", "40°38′23″N, 73°46′44″W" or "52 30 N 4 15 E".
// The two coordinates are separated by white space or a comma; when more
// than two fields are present the hemisphere letters decide where the
// latitude ends, and without letters the fields are split in half.
func ParsePosition(s string) (Position, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	switch {
	case len(fields) < 2:
		return Position{}, fmt.Errorf("%q: expected a latitude and a longitude: %w", s, ErrParse)
	case len(fields) == 2:
		return ParsePositionPair(fields[0], fields[1])
	}

	if !strings.ContainsAny(strings.ToUpper(s), "NSEW") {
		if len(fields)%2 != 0 || len(fields) > 6 {
			return Position{}, fmt.Errorf("%q: cannot split %d fields: %w", s, len(fields), ErrParse)
		}
		h := len(fields) / 2
		return ParsePositionPair(strings.Join(fields[:h], " "), strings.Join(fields[h:], " "))
	}

	var (
		found Position
		n     int
	)
	for k := 1; k < len(fields); k++ {
		a, err := scanCoordinate(strings.Join(fields[:k], " "))
		if err != nil || a.hemi == 0 {
			continue
		}
		b, err := scanCoordinate(strings.Join(fields[k:], " "))
		if err != nil || b.hemi == 0 {
			continue
		}
		p, err := positionFromCoordinates(a, b, s)
		if err != nil {
			continue
		}
		found = p
		n++
	}
	if n != 1 {
		return Position{}, fmt.Errorf("%q: cannot split into latitude and longitude: %w", s, ErrParse)
	}
	return found, nil
}
